package controller

import (
	"errors"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/xNickChildx/mult-ff-viewer-pub/config"
	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

func newTestController(t *testing.T) C {
	t.Helper()
	ctrl, err := New(clock.NewMock(), nil, &config.Config{Year: 2024})
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return ctrl
}

func TestResolveTeam(t *testing.T) {
	league := &model.League{
		ID: "111111",
		Teams: []model.Team{
			{ID: 1, Name: "First Team", Owners: []model.Owner{
				{FirstName: "Ann", LastName: "Perkins"},
			}},
			{ID: 2, Name: "Second Team", Owners: []model.Owner{
				{FirstName: "Tom", LastName: "Haverford"},
				{FirstName: "Ron", LastName: "Swanson"},
			}},
			{ID: 3, Name: "Third Team", Owners: []model.Owner{
				{FirstName: "Ron", LastName: "Swanson"},
			}},
		},
	}
	ctrl := newTestController(t)

	tests := map[string]struct {
		userName string
		exTeam   int
		exErr    bool
	}{
		"exact match":             {userName: "Ron Swanson", exTeam: 2},
		"co-owner matches":        {userName: "Tom Haverford", exTeam: 2},
		"substring of configured": {userName: "Mr Ron Swanson Esq", exTeam: 2},
		"other owner":             {userName: "Ann Perkins", exTeam: 1},
		"first name only":         {userName: "Ron", exErr: true},
		"unknown user":            {userName: "April Ludgate", exErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			team, err := ctrl.ResolveTeam(league, tc.userName)
			if tc.exErr {
				if !errors.Is(err, ErrIdentityNotFound) {
					t.Fatalf("expected ErrIdentityNotFound, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if team.ID != tc.exTeam {
				t.Errorf("expected team %d, got %d (%s)", tc.exTeam, team.ID, team.Name)
			}
		})
	}
}
