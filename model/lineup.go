package model

import (
	"sort"
	"strings"
	"time"
)

const timeSlotFormat = "Mon 01/02/2006, 03:04:05 PM"

// TimeSlot is either a concrete kickoff time or the distinguished bye value,
// which always sorts first.
type TimeSlot struct {
	Bye  bool
	Time time.Time
}

// TimeSlotKey is the comparable form of a TimeSlot, used for deduplication.
type TimeSlotKey struct {
	Bye  bool
	Unix int64
}

func ByeSlot() TimeSlot {
	return TimeSlot{Bye: true}
}

func (t TimeSlot) Key() TimeSlotKey {
	if t.Bye {
		return TimeSlotKey{Bye: true}
	}
	return TimeSlotKey{Unix: t.Time.Unix()}
}

// Before orders the bye slot ahead of every scheduled slot, and scheduled
// slots by kickoff time ascending.
func (t TimeSlot) Before(o TimeSlot) bool {
	if t.Bye != o.Bye {
		return t.Bye
	}
	if t.Bye {
		return false
	}
	return t.Time.Before(o.Time)
}

func (t TimeSlot) Label() string {
	if t.Bye {
		return "BYE"
	}
	return t.Time.Format(timeSlotFormat)
}

const (
	SlotBench          = "BE"
	SlotInjuredReserve = "IR"
)

// LineupSlot is one player in a team's weekly lineup.
type LineupSlot struct {
	PlayerName      string
	SlotDesignation string
	Points          float64
	ProjectedPoints float64
	GameTime        TimeSlot
	Stats           map[int]StatLine
}

// Benched reports whether the player is on the bench or injured reserve.
func (s *LineupSlot) Benched() bool {
	return s.SlotDesignation == SlotBench || s.SlotDesignation == SlotInjuredReserve
}

// ShortName abbreviates "Justin Jefferson" to "J. Jefferson". Single-token
// names (e.g. team defenses) are returned unchanged.
func (s *LineupSlot) ShortName() string {
	parts := strings.Fields(s.PlayerName)
	if len(parts) < 2 {
		return s.PlayerName
	}
	return parts[0][:1] + ". " + parts[len(parts)-1]
}

// StatLine is one week's statistics for a player, actual and projected.
type StatLine struct {
	Points             float64
	Breakdown          map[string]float64
	ProjectedPoints    float64
	ProjectedBreakdown map[string]float64
}

// DisplayBreakdown returns the stat categories shown under a player: the
// actual breakdown only. The projected breakdown stays on the StatLine, the
// source record is not modified.
func (s StatLine) DisplayBreakdown() map[string]float64 {
	out := make(map[string]float64, len(s.Breakdown))
	for k, v := range s.Breakdown {
		out[k] = v
	}
	return out
}

// SortLineup orders a lineup ascending by time slot, bye entries first. The
// sort is stable so players sharing a kickoff keep their roster order.
func SortLineup(lineup []LineupSlot) {
	sort.SliceStable(lineup, func(i, j int) bool {
		return lineup[i].GameTime.Before(lineup[j].GameTime)
	})
}
