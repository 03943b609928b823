package espn

import (
	"fmt"
	"time"

	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

// Stat sources inside a player's stats array.
const (
	statSourceActual    = 0
	statSourceProjected = 1
)

type leagueResponse struct {
	ID              int             `json:"id"`
	ScoringPeriodID int             `json:"scoringPeriodId"`
	Status          leagueStatus    `json:"status"`
	Members         []member        `json:"members"`
	Teams           []team          `json:"teams"`
	Schedule        []scheduleEntry `json:"schedule"`
}

type leagueStatus struct {
	CurrentMatchupPeriod int `json:"currentMatchupPeriod"`
}

type member struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type team struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Owners []string `json:"owners"`
	Record record   `json:"record"`
}

type record struct {
	Overall recordDetails `json:"overall"`
}

type recordDetails struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

type scheduleEntry struct {
	MatchupPeriodID int        `json:"matchupPeriodId"`
	Home            *teamScore `json:"home"`
	Away            *teamScore `json:"away"`
}

type teamScore struct {
	TeamID                   int     `json:"teamId"`
	TotalPoints              float64 `json:"totalPoints"`
	TotalPointsLive          float64 `json:"totalPointsLive"`
	TotalProjectedPointsLive float64 `json:"totalProjectedPointsLive"`
	Roster                   roster  `json:"rosterForCurrentScoringPeriod"`
}

type roster struct {
	Entries []rosterEntry `json:"entries"`
}

type rosterEntry struct {
	LineupSlotID    int             `json:"lineupSlotId"`
	PlayerPoolEntry playerPoolEntry `json:"playerPoolEntry"`
}

type playerPoolEntry struct {
	Player player `json:"player"`
}

type player struct {
	FullName  string      `json:"fullName"`
	ProTeamID int         `json:"proTeamId"`
	Stats     []statEntry `json:"stats"`
}

type statEntry struct {
	ScoringPeriodID int                `json:"scoringPeriodId"`
	StatSourceID    int                `json:"statSourceId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	AppliedStats    map[string]float64 `json:"appliedStats"`
}

type seasonResponse struct {
	Settings seasonSettings `json:"settings"`
}

type seasonSettings struct {
	ProTeams []proTeam `json:"proTeams"`
}

type proTeam struct {
	ID                      int                  `json:"id"`
	ProGamesByScoringPeriod map[string][]proGame `json:"proGamesByScoringPeriod"`
}

type proGame struct {
	Date int64 `json:"date"` // ms since epoch
}

// kickoffs indexes the pro schedule as proTeamId -> scoringPeriod -> kickoff.
// A missing entry means the pro team has a bye that week.
func (s *seasonResponse) kickoffs() map[int]map[int]time.Time {
	out := make(map[int]map[int]time.Time, len(s.Settings.ProTeams))
	for _, pt := range s.Settings.ProTeams {
		byPeriod := make(map[int]time.Time, len(pt.ProGamesByScoringPeriod))
		for period, games := range pt.ProGamesByScoringPeriod {
			var p int
			if _, err := fmt.Sscanf(period, "%d", &p); err != nil || len(games) == 0 {
				continue
			}
			byPeriod[p] = time.UnixMilli(games[0].Date)
		}
		out[pt.ID] = byPeriod
	}
	return out
}

func (l *leagueResponse) toLeague(leagueID string, year int, kickoffs map[int]map[int]time.Time) *model.League {
	members := make(map[string]member, len(l.Members))
	for _, m := range l.Members {
		members[m.ID] = m
	}

	teams := make([]model.Team, 0, len(l.Teams))
	for _, t := range l.Teams {
		teams = append(teams, t.toTeam(members))
	}

	week := l.ScoringPeriodID
	matchups := make([]model.Matchup, 0, len(l.Schedule))
	for _, e := range l.Schedule {
		// Playoff byes appear as schedule entries with a single side.
		if e.MatchupPeriodID != l.Status.CurrentMatchupPeriod || e.Home == nil || e.Away == nil {
			continue
		}
		matchups = append(matchups, model.Matchup{
			HomeTeamID:    e.Home.TeamID,
			AwayTeamID:    e.Away.TeamID,
			HomeLineup:    e.Home.toLineup(week, kickoffs),
			AwayLineup:    e.Away.toLineup(week, kickoffs),
			HomeScore:     e.Home.score(),
			AwayScore:     e.Away.score(),
			HomeProjected: e.Home.TotalProjectedPointsLive,
			AwayProjected: e.Away.TotalProjectedPointsLive,
		})
	}

	return &model.League{
		ID:          leagueID,
		Year:        year,
		CurrentWeek: week,
		Teams:       teams,
		Matchups:    matchups,
	}
}

func (t *team) toTeam(members map[string]member) model.Team {
	owners := make([]model.Owner, 0, len(t.Owners))
	for _, id := range t.Owners {
		m, ok := members[id]
		if !ok {
			continue
		}
		owners = append(owners, model.Owner{FirstName: m.FirstName, LastName: m.LastName})
	}
	return model.Team{
		ID:     t.ID,
		Name:   t.Name,
		Owners: owners,
		Record: model.Record{
			Wins:   t.Record.Overall.Wins,
			Losses: t.Record.Overall.Losses,
			Ties:   t.Record.Overall.Ties,
		},
	}
}

// score prefers the live total during games, falling back to the final total.
func (ts *teamScore) score() float64 {
	if ts.TotalPointsLive != 0 {
		return ts.TotalPointsLive
	}
	return ts.TotalPoints
}

func (ts *teamScore) toLineup(week int, kickoffs map[int]map[int]time.Time) []model.LineupSlot {
	lineup := make([]model.LineupSlot, 0, len(ts.Roster.Entries))
	for _, e := range ts.Roster.Entries {
		p := e.PlayerPoolEntry.Player

		stats := make(map[int]model.StatLine)
		for _, st := range p.Stats {
			line := stats[st.ScoringPeriodID]
			switch st.StatSourceID {
			case statSourceActual:
				line.Points = st.AppliedTotal
				line.Breakdown = namedStats(st.AppliedStats)
			case statSourceProjected:
				line.ProjectedPoints = st.AppliedTotal
				line.ProjectedBreakdown = namedStats(st.AppliedStats)
			}
			stats[st.ScoringPeriodID] = line
		}

		current := stats[week]
		lineup = append(lineup, model.LineupSlot{
			PlayerName:      p.FullName,
			SlotDesignation: slotName(e.LineupSlotID),
			Points:          current.Points,
			ProjectedPoints: current.ProjectedPoints,
			GameTime:        gameTime(p.ProTeamID, week, kickoffs),
			Stats:           stats,
		})
	}
	return lineup
}

func gameTime(proTeamID, week int, kickoffs map[int]map[int]time.Time) model.TimeSlot {
	kickoff, ok := kickoffs[proTeamID][week]
	if !ok {
		return model.ByeSlot()
	}
	return model.TimeSlot{Time: kickoff}
}
