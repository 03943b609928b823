package controller

import "testing"

func TestColorizePerformance(t *testing.T) {
	tests := []struct {
		name      string
		points    float64
		projected float64
		exColor   Color
		exOK      bool
	}{
		{name: "no points", points: 0, projected: 12.5, exOK: false},
		{name: "no projection", points: 8.2, projected: 0, exOK: false},
		{name: "neither", points: 0, projected: 0, exOK: false},
		{name: "at 150 pct saturates green", points: 15, projected: 10,
			exColor: Color{R: 0, G: 255, A: 0.2}, exOK: true},
		{name: "far above projection stays saturated", points: 40, projected: 10,
			exColor: Color{R: 0, G: 255, A: 0.2}, exOK: true},
		{name: "rounds to zero saturates red", points: 0.4, projected: 10,
			exColor: Color{R: 255, G: 0, A: 0.2}, exOK: true},
		{name: "negative points clamp to red", points: -5, projected: 10,
			exColor: Color{R: 255, G: 0, A: 0.2}, exOK: true},
		{name: "midpoint is yellow", points: 7.5, projected: 10,
			exColor: Color{R: 238, G: 255, A: 0.2}, exOK: true},
		{name: "below midpoint", points: 4, projected: 10,
			exColor: Color{R: 255, G: 136, A: 0.2}, exOK: true},
		{name: "sub one projection floors at one", points: 1.5, projected: 0.5,
			exColor: Color{R: 0, G: 255, A: 0.2}, exOK: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := ColorizePerformance(tc.points, tc.projected)
			if ok != tc.exOK {
				t.Fatalf("expected ok=%v, got %v", tc.exOK, ok)
			}
			if ok && c != tc.exColor {
				t.Errorf("expected %+v, got %+v", tc.exColor, c)
			}
		})
	}
}

// Raising actual points never lowers green or raises red; raising the
// projection never raises green or lowers red.
func TestColorizeMonotonic(t *testing.T) {
	prev, _ := ColorizePerformance(1, 20)
	for points := 2.0; points <= 40; points++ {
		c, ok := ColorizePerformance(points, 20)
		if !ok {
			t.Fatalf("expected a color for points=%v", points)
		}
		if c.G < prev.G || c.R > prev.R {
			t.Errorf("points %v: green %d -> %d, red %d -> %d", points, prev.G, c.G, prev.R, c.R)
		}
		prev = c
	}

	prev, _ = ColorizePerformance(15, 1)
	for projected := 2.0; projected <= 40; projected++ {
		c, ok := ColorizePerformance(15, projected)
		if !ok {
			t.Fatalf("expected a color for projected=%v", projected)
		}
		if c.G > prev.G || c.R < prev.R {
			t.Errorf("projected %v: green %d -> %d, red %d -> %d", projected, prev.G, c.G, prev.R, c.R)
		}
		prev = c
	}
}
