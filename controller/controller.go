package controller

import (
	"context"

	"github.com/itbasis/go-clock"
	"github.com/xNickChildx/mult-ff-viewer-pub/config"
	"github.com/xNickChildx/mult-ff-viewer-pub/espn"
	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

// C encapsulates the aggregation logic without worrying about rendering.
type C interface {
	// ResolveTeam finds the team in the league owned by the given user. The
	// match is by owner name: some owner's "First Last" must be a substring
	// of the configured user name. Returns ErrIdentityNotFound otherwise.
	ResolveTeam(l *model.League, userName string) (*model.Team, error)

	// AggregateLeague fetches one league and builds its AggregateRecord for
	// the given user. Returns the key (the resolved team's name) along with
	// the record.
	AggregateLeague(ctx context.Context, leagueID, userName string) (string, *model.AggregateRecord, error)

	// RefreshAggregates aggregates every configured league in order. Any
	// single league failure fails the whole refresh; the error names the
	// league that failed.
	RefreshAggregates(ctx context.Context, userName string) (*model.AggregateSet, error)
}

type controller struct {
	clock     clock.Clock
	espn      espn.Client
	leagueIDs []string
	year      int
	espnS2    string
	swid      string
}

func New(clock clock.Clock, espnClient espn.Client, cfg *config.Config) (C, error) {
	c := &controller{
		clock:     clock,
		espn:      espnClient,
		leagueIDs: cfg.LeagueIDs,
		year:      cfg.Year,
		espnS2:    cfg.ESPNS2,
		swid:      cfg.SWID,
	}
	return c, nil
}
