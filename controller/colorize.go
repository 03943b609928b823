package controller

import "math"

// Color is a red/green background tint for one player. Alpha is fixed low so
// the tint stays subtle behind the text.
type Color struct {
	R uint8
	G uint8
	A float64
}

const tintAlpha = 0.2

// ColorizePerformance maps actual vs projected points onto a red/green
// gradient: full green at 150% of the (rounded, floor-1) projection, full red
// at zero, blended linearly per channel in between. Returns false when either
// value is missing, in which case the player renders with no tint.
func ColorizePerformance(points, projected float64) (Color, bool) {
	if points == 0 || projected == 0 {
		return Color{}, false
	}

	ratio := math.Min(1.0, math.Round(points)/(math.Round(math.Max(1, projected))*1.5))
	deficit := 1.0 - ratio

	return Color{
		R: channel(deficit * 2 * 255),
		G: channel(ratio * 2 * 255),
		A: tintAlpha,
	}, true
}

func channel(v float64) uint8 {
	return uint8(math.Min(255, math.Max(0, v)))
}
