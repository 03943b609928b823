package controller

import (
	"context"
	"errors"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

// Session owns the active user index and the current aggregate set. It is the
// only thing that mutates either, and it does so synchronously: a refresh
// either fully replaces the aggregate set or leaves it untouched.
type Session struct {
	ctrl  C
	clock clock.Clock

	users       []model.User
	current     int
	set         *model.AggregateSet
	lastRefresh time.Time
}

// NewSession performs the initial refresh for the first configured user. If
// that refresh fails the session is still returned, with an empty aggregate
// set, alongside the error: the caller shows the failure and the user can
// retry interactively.
func NewSession(ctx context.Context, ctrl C, clock clock.Clock, users []model.User) (*Session, error) {
	if len(users) == 0 {
		return nil, errors.New("at least one user is required")
	}

	s := &Session{
		ctrl:  ctrl,
		clock: clock,
		users: users,
		set:   model.NewAggregateSet(),
	}
	err := s.Refresh(ctx)
	return s, err
}

// Refresh rebuilds the aggregate set for the current user. On failure the
// previous set is kept and the error reports the failing league.
func (s *Session) Refresh(ctx context.Context) error {
	set, err := s.ctrl.RefreshAggregates(ctx, s.CurrentUser().FullName())
	if err != nil {
		return err
	}
	s.set = set
	s.lastRefresh = s.clock.Now()
	return nil
}

// NextUser advances the rotation and refreshes for the new user. The user
// index advances even when the refresh fails, so a retry targets the new
// user.
func (s *Session) NextUser(ctx context.Context) error {
	s.current = (s.current + 1) % len(s.users)
	return s.Refresh(ctx)
}

func (s *Session) CurrentUser() model.User {
	return s.users[s.current]
}

// Title is the externally visible session title: the active user's name.
func (s *Session) Title() string {
	return s.CurrentUser().FullName()
}

// Aggregates returns the current aggregate set. Callers treat it as a
// snapshot; it is replaced wholesale, never mutated in place.
func (s *Session) Aggregates() *model.AggregateSet {
	return s.set
}

func (s *Session) LastRefresh() time.Time {
	return s.lastRefresh
}
