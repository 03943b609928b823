package controller

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
	"github.com/xNickChildx/mult-ff-viewer-pub/config"
	"github.com/xNickChildx/mult-ff-viewer-pub/espn"
	"github.com/xNickChildx/mult-ff-viewer-pub/espn/mockespn"
	"github.com/xNickChildx/mult-ff-viewer-pub/model"
	"github.com/xNickChildx/mult-ff-viewer-pub/testutils"
)

func TestRefreshAggregates(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	cfg := &config.Config{
		LeagueIDs: []string{"111111", "222222"},
		Year:      2024,
	}
	ctrl, err := New(clock.NewMock(), espn.NewForTest(fakeESPN.URL()), cfg)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	ctx := context.Background()

	set, err := ctrl.RefreshAggregates(ctx, "Ron Swanson")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same team name in both leagues, so the second key gets the marker.
	keys := set.Keys()
	if len(keys) != 2 || keys[0] != "Swanson Slammers" || keys[1] != "Swanson Slammers." {
		t.Fatalf("unexpected keys: %v", keys)
	}

	home, _ := set.Get("Swanson Slammers")
	if home.IsAway {
		t.Errorf("expected the first league's team to be home")
	}
	if home.Opponent.Name != "Perkins Playmakers" {
		t.Errorf("unexpected opponent: %s", home.Opponent.Name)
	}
	if home.Week != 5 {
		t.Errorf("expected week 5 from a 3-1-0 record, got %d", home.Week)
	}
	if got := ClassifyMatchup(home.MyScore(), home.TheirScore()); got != StatusWinning {
		t.Errorf("expected winning at 120/105, got %s", got)
	}

	// Lineups are sorted with the bye entry first.
	exOrder := []string{"Jordan Love", "Kirk Cousins", "Wil Lutz"}
	if len(home.MyLineup) != len(exOrder) {
		t.Fatalf("expected %d lineup slots, got %d", len(exOrder), len(home.MyLineup))
	}
	for i, name := range exOrder {
		if home.MyLineup[i].PlayerName != name {
			t.Errorf("lineup position %d: expected %s, got %s", i, name, home.MyLineup[i].PlayerName)
		}
	}
	// The underlying matchup keeps the provider's roster order.
	if home.Matchup.HomeLineup[0].PlayerName != "Kirk Cousins" {
		t.Errorf("matchup lineup was reordered: %s", home.Matchup.HomeLineup[0].PlayerName)
	}

	away, _ := set.Get("Swanson Slammers.")
	if !away.IsAway {
		t.Errorf("expected the second league's team to be away")
	}
	if away.Opponent.Name != "Entertainment 720" {
		t.Errorf("unexpected opponent: %s", away.Opponent.Name)
	}
	if got := ClassifyMatchup(away.MyScore(), away.TheirScore()); got != StatusTied {
		t.Errorf("expected tied at 100/100, got %s", got)
	}
	if away.MyScore() != 100.0 || away.MyProjected() != 99.0 {
		t.Errorf("away side not selected correctly: %v/%v", away.MyScore(), away.MyProjected())
	}
}

func TestRefreshAggregatesErrors(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctx := context.Background()

	t.Run("identity not found", func(t *testing.T) {
		cfg := &config.Config{LeagueIDs: []string{"111111"}, Year: 2024}
		ctrl, _ := New(clock.NewMock(), espn.NewForTest(fakeESPN.URL()), cfg)

		_, err := ctrl.RefreshAggregates(ctx, "April Ludgate")
		if !errors.Is(err, ErrIdentityNotFound) {
			t.Errorf("expected ErrIdentityNotFound, got: %v", err)
		}
	})

	t.Run("fetch failure names the league", func(t *testing.T) {
		cfg := &config.Config{LeagueIDs: []string{"111111", "999999"}, Year: 2024}
		ctrl, _ := New(clock.NewMock(), espn.NewForTest(fakeESPN.URL()), cfg)

		_, err := ctrl.RefreshAggregates(ctx, "Ron Swanson")
		if err == nil {
			t.Fatalf("expected an error for the unknown league")
		}
		if !strings.HasPrefix(err.Error(), "league 999999:") {
			t.Errorf("error does not name the failing league: %v", err)
		}
	})
}

func TestAggregateLeagueNoMatchup(t *testing.T) {
	client := &mockespn.Client{}
	client.On("FetchLeague", mock.Anything, "111111", 2024, "", "").Return(&model.League{
		ID:          "111111",
		CurrentWeek: 15,
		Teams: []model.Team{
			{ID: 1, Name: "Swanson Slammers", Owners: []model.Owner{
				{FirstName: "Ron", LastName: "Swanson"},
			}},
		},
		// Eliminated from the playoffs: no matchup this week.
		Matchups: nil,
	}, nil)

	cfg := &config.Config{LeagueIDs: []string{"111111"}, Year: 2024}
	ctrl, _ := New(clock.NewMock(), client, cfg)

	_, _, err := ctrl.AggregateLeague(context.Background(), "111111", "Ron Swanson")
	if !errors.Is(err, ErrMatchupNotFound) {
		t.Errorf("expected ErrMatchupNotFound, got: %v", err)
	}
	client.AssertExpectations(t)
}
