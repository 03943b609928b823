package controller

// MatchupStatus is the three-state result of comparing the two sides of a
// matchup.
type MatchupStatus string

const (
	StatusWinning MatchupStatus = "winning"
	StatusLosing  MatchupStatus = "losing"
	StatusTied    MatchupStatus = "tied"
)

// A matchup only counts as winning or losing once the margin clears this
// many points; anything closer is shown as tied.
const winningMargin = 10.0

// ClassifyMatchup compares my score against the opponent's. A margin of
// exactly winningMargin is still tied.
func ClassifyMatchup(mine, theirs float64) MatchupStatus {
	switch {
	case mine > theirs+winningMargin:
		return StatusWinning
	case theirs > mine+winningMargin:
		return StatusLosing
	default:
		return StatusTied
	}
}
