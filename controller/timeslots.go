package controller

import (
	"sort"

	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

// TimeSlots returns the distinct game time slots appearing in any lineup of
// any record, ordered with the bye slot first and scheduled slots ascending.
// Recomputed on every call; nothing is cached across refreshes.
func TimeSlots(set *model.AggregateSet) []model.TimeSlot {
	if set == nil {
		return nil
	}

	seen := make(map[model.TimeSlotKey]bool)
	var slots []model.TimeSlot
	add := func(lineup []model.LineupSlot) {
		for _, s := range lineup {
			key := s.GameTime.Key()
			if !seen[key] {
				seen[key] = true
				slots = append(slots, s.GameTime)
			}
		}
	}

	for _, k := range set.Keys() {
		rec, ok := set.Get(k)
		if !ok {
			continue
		}
		add(rec.MyLineup)
		add(rec.OpponentLineup)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Before(slots[j])
	})
	return slots
}
