package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

// ErrMatchupNotFound means the resolved team has no matchup in the current
// week's schedule.
var ErrMatchupNotFound = errors.New("no current matchup for team")

func (c *controller) AggregateLeague(ctx context.Context, leagueID, userName string) (string, *model.AggregateRecord, error) {
	l, err := c.espn.FetchLeague(ctx, leagueID, c.year, c.espnS2, c.swid)
	if err != nil {
		return "", nil, fmt.Errorf("error fetching league data: %w", err)
	}

	team, err := c.ResolveTeam(l, userName)
	if err != nil {
		return "", nil, err
	}

	// The provider returns at most one matchup per team per week; if it ever
	// returned more, the first in schedule order wins.
	var matchup *model.Matchup
	for i := range l.Matchups {
		if l.Matchups[i].Includes(team.ID) {
			matchup = &l.Matchups[i]
			break
		}
	}
	if matchup == nil {
		return "", nil, fmt.Errorf("%w: %s in league %s", ErrMatchupNotFound, team.Name, l.ID)
	}

	isAway := matchup.AwayTeamID == team.ID

	mine, theirs := matchup.HomeLineup, matchup.AwayLineup
	opponentID := matchup.AwayTeamID
	if isAway {
		mine, theirs = theirs, mine
		opponentID = matchup.HomeTeamID
	}

	opponent := teamByID(l, opponentID)
	if opponent == nil {
		return "", nil, fmt.Errorf("opponent team %d not found in league %s", opponentID, l.ID)
	}

	// Sort copies so the matchup keeps its original roster order.
	mine = append([]model.LineupSlot(nil), mine...)
	theirs = append([]model.LineupSlot(nil), theirs...)
	model.SortLineup(mine)
	model.SortLineup(theirs)

	rec := &model.AggregateRecord{
		Team:           *team,
		Opponent:       *opponent,
		MyLineup:       mine,
		OpponentLineup: theirs,
		IsAway:         isAway,
		Matchup:        *matchup,
		Week:           team.Record.CurrentWeek(),
	}
	return team.Name, rec, nil
}

func (c *controller) RefreshAggregates(ctx context.Context, userName string) (*model.AggregateSet, error) {
	set := model.NewAggregateSet()
	for _, id := range c.leagueIDs {
		key, rec, err := c.AggregateLeague(ctx, id, userName)
		if err != nil {
			return nil, fmt.Errorf("league %s: %w", id, err)
		}
		set.Add(key, rec)
	}
	return set, nil
}

func teamByID(l *model.League, id int) *model.Team {
	for i := range l.Teams {
		if l.Teams[i].ID == id {
			return &l.Teams[i]
		}
	}
	return nil
}
