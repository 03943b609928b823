package espn

import "fmt"

// lineupSlotNames maps ESPN's numeric lineupSlotId values to the designations
// shown on the dashboard. BE and IR mark players who aren't starting.
var lineupSlotNames = map[int]string{
	0:  "QB",
	2:  "RB",
	3:  "RB/WR",
	4:  "WR",
	5:  "WR/TE",
	6:  "TE",
	7:  "OP",
	16: "D/ST",
	17: "K",
	20: "BE",
	21: "IR",
	23: "FLEX",
}

func slotName(id int) string {
	if name, ok := lineupSlotNames[id]; ok {
		return name
	}
	return fmt.Sprintf("SLOT_%d", id)
}

// statNames covers the applied stat ids that show up in weekly breakdowns.
// Unknown ids keep their numeric form rather than being dropped.
var statNames = map[string]string{
	"3":   "passingYards",
	"4":   "passingTouchdowns",
	"20":  "passingInterceptions",
	"24":  "rushingYards",
	"25":  "rushingTouchdowns",
	"42":  "receivingYards",
	"43":  "receivingTouchdowns",
	"53":  "receivingReceptions",
	"72":  "lostFumbles",
	"74":  "madeFieldGoalsFrom50Plus",
	"77":  "madeFieldGoalsFrom40To49",
	"80":  "madeFieldGoalsFromUnder40",
	"86":  "madeExtraPoints",
	"89":  "defensivePointsAllowed",
	"95":  "defensiveInterceptions",
	"96":  "defensiveFumbles",
	"99":  "defensiveSacks",
	"104": "defensiveTouchdowns",
}

func namedStats(applied map[string]float64) map[string]float64 {
	if len(applied) == 0 {
		return nil
	}
	out := make(map[string]float64, len(applied))
	for id, v := range applied {
		name, ok := statNames[id]
		if !ok {
			name = "stat_" + id
		}
		out[name] = v
	}
	return out
}
