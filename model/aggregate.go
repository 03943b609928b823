package model

// AggregateRecord is the per-league view model produced by a refresh: the
// resolved team and its opponent, both lineups sorted by time slot, and the
// computed week number.
type AggregateRecord struct {
	Team           Team
	Opponent       Team
	MyLineup       []LineupSlot
	OpponentLineup []LineupSlot
	IsAway         bool
	Matchup        Matchup
	Week           int
}

// MyScore returns the resolved team's side of the matchup total.
func (r *AggregateRecord) MyScore() float64 {
	if r.IsAway {
		return r.Matchup.AwayScore
	}
	return r.Matchup.HomeScore
}

func (r *AggregateRecord) TheirScore() float64 {
	if r.IsAway {
		return r.Matchup.HomeScore
	}
	return r.Matchup.AwayScore
}

func (r *AggregateRecord) MyProjected() float64 {
	if r.IsAway {
		return r.Matchup.AwayProjected
	}
	return r.Matchup.HomeProjected
}

func (r *AggregateRecord) TheirProjected() float64 {
	if r.IsAway {
		return r.Matchup.HomeProjected
	}
	return r.Matchup.AwayProjected
}

// LineupAt selects the entries of a lineup scheduled at the given slot.
func LineupAt(lineup []LineupSlot, slot TimeSlot) []LineupSlot {
	var out []LineupSlot
	key := slot.Key()
	for _, s := range lineup {
		if s.GameTime.Key() == key {
			out = append(out, s)
		}
	}
	return out
}

// AggregateSet is the keyed collection of AggregateRecords for one refresh.
// Keys are team names; iteration follows insertion order.
type AggregateSet struct {
	keys    []string
	records map[string]*AggregateRecord
}

func NewAggregateSet() *AggregateSet {
	return &AggregateSet{records: make(map[string]*AggregateRecord)}
}

// Add inserts the record under the given key. If the key is already present
// a "." is appended until the key is unique, so records from different
// leagues never overwrite each other. The key actually used is returned.
func (s *AggregateSet) Add(key string, r *AggregateRecord) string {
	for {
		if _, ok := s.records[key]; !ok {
			break
		}
		key = key + "."
	}
	s.keys = append(s.keys, key)
	s.records[key] = r
	return key
}

func (s *AggregateSet) Get(key string) (*AggregateRecord, bool) {
	r, ok := s.records[key]
	return r, ok
}

// Keys returns the record keys in insertion order.
func (s *AggregateSet) Keys() []string {
	return s.keys
}

func (s *AggregateSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}
