package model

import "fmt"

// League is a snapshot of one fantasy league as returned by the data source.
// It is fetched fresh on every refresh and never retained across refreshes.
type League struct {
	ID          string
	Year        int
	CurrentWeek int
	Teams       []Team
	Matchups    []Matchup
}

type Team struct {
	ID     int
	Name   string
	Owners []Owner
	Record Record
}

// Owner is a real person associated with a fantasy team.
type Owner struct {
	FirstName string
	LastName  string
}

func (o Owner) FullName() string {
	return fmt.Sprintf("%s %s", o.FirstName, o.LastName)
}

type Record struct {
	Wins   int
	Losses int
	Ties   int
}

// CurrentWeek derives the week number from the cumulative record. A team
// that has played six games is in week seven.
func (r Record) CurrentWeek() int {
	return r.Wins + r.Losses + r.Ties + 1
}

// Matchup is one scored pairing of two teams for the current week.
type Matchup struct {
	HomeTeamID    int
	AwayTeamID    int
	HomeLineup    []LineupSlot
	AwayLineup    []LineupSlot
	HomeScore     float64
	AwayScore     float64
	HomeProjected float64
	AwayProjected float64
}

// Includes reports whether the given team is on either side of the matchup.
func (m *Matchup) Includes(teamID int) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}
