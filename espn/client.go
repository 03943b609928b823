// Package espn is the read-only client for the ESPN fantasy football v3 API.
// It fetches a league's current teams, rosters, and matchups and converts
// them into model types. Nothing is ever written back.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

const ESPNReadURL = "https://lm-api-reads.fantasy.espn.com"

type Client interface {
	// FetchLeague returns a snapshot of the league's current week: teams with
	// owners and records, and the current matchups with both lineups. The
	// espn_s2/swid cookie pair may be empty for public leagues.
	FetchLeague(ctx context.Context, leagueID string, year int, espnS2, swid string) (*model.League, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return NewForTest(ESPNReadURL), nil
}

func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
}

func (c *client) FetchLeague(ctx context.Context, leagueID string, year int, espnS2, swid string) (*model.League, error) {
	var league leagueResponse
	url := fmt.Sprintf("%s/apis/v3/games/ffl/seasons/%d/segments/0/leagues/%s?view=mTeam&view=mRoster&view=mMatchup&view=mSettings",
		c.url, year, leagueID)
	if err := c.get(ctx, url, espnS2, swid, &league); err != nil {
		return nil, fmt.Errorf("error fetching league %s: %w", leagueID, err)
	}

	var season seasonResponse
	url = fmt.Sprintf("%s/apis/v3/games/ffl/seasons/%d?view=proTeamSchedules_wl", c.url, year)
	if err := c.get(ctx, url, espnS2, swid, &season); err != nil {
		return nil, fmt.Errorf("error fetching pro schedules: %w", err)
	}

	return league.toLeague(leagueID, year, season.kickoffs()), nil
}

func (c *client) get(ctx context.Context, url, espnS2, swid string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	if espnS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: espnS2})
	}
	if swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: swid})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from espn: %w", err)
	}
	return nil
}
