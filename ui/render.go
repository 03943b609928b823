package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/xNickChildx/mult-ff-viewer-pub/controller"
	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

// ANSI sequences. The terminal must support 24-bit color for the
// performance tints; everything else is plain SGR.
const (
	clearScreen = "\x1b[2J\x1b[H"
	reset       = "\x1b[0m"
	bold        = "\x1b[1m"
	dim         = "\x1b[2m"
	fgRed       = "\x1b[31m"
	fgGreen     = "\x1b[32m"
	fgYellow    = "\x1b[33m"
)

// Render writes the full dashboard: title, refresh state, then every time
// slot with each matchup's players scheduled at that slot. Raw-mode output,
// so lines end with \r\n.
func Render(w io.Writer, s *controller.Session, refreshErr error) {
	fmt.Fprint(w, clearScreen)
	line(w, "%s%s%s", bold, s.Title(), reset)
	if !s.LastRefresh().IsZero() {
		line(w, "%slast refresh: %s%s", dim, s.LastRefresh().Format(time.DateTime), reset)
	}
	if refreshErr != nil {
		line(w, "%srefresh failed: %v%s", fgRed, refreshErr, reset)
	}
	line(w, "%s[q] quit  [n] next user  [r] refresh%s", dim, reset)

	set := s.Aggregates()
	for _, slot := range controller.TimeSlots(set) {
		line(w, "")
		line(w, "%s── %s%s", bold, slot.Label(), reset)

		for _, key := range set.Keys() {
			rec, ok := set.Get(key)
			if !ok {
				continue
			}
			renderMatchup(w, key, rec, slot)
		}
	}
}

func renderMatchup(w io.Writer, key string, rec *model.AggregateRecord, slot model.TimeSlot) {
	mine := model.LineupAt(rec.MyLineup, slot)
	theirs := model.LineupAt(rec.OpponentLineup, slot)
	if len(mine) == 0 && len(theirs) == 0 {
		return
	}

	status := controller.ClassifyMatchup(rec.MyScore(), rec.TheirScore())
	line(w, "  %s[%s]%s %s - %.1f/%.1f  vs  %s - %.1f/%.1f",
		statusStyle(status), status, reset,
		key, rec.MyScore(), rec.MyProjected(),
		rec.Opponent.Name, rec.TheirScore(), rec.TheirProjected())

	for _, p := range mine {
		renderPlayer(w, p, rec.Week)
	}
	if len(theirs) > 0 {
		line(w, "    %s--%s", dim, reset)
		for _, p := range theirs {
			renderPlayer(w, p, rec.Week)
		}
	}
}

func renderPlayer(w io.Writer, p model.LineupSlot, week int) {
	style := ""
	if c, ok := controller.ColorizePerformance(p.Points, p.ProjectedPoints); ok {
		style = bgTint(c)
	}
	if p.Benched() {
		style += dim
	}

	name := fmt.Sprintf("%s (%s)", p.ShortName(), p.SlotDesignation)
	line(w, "    %s%-24s %6.1f / %-6.1f%s", style, name, p.Points, p.ProjectedPoints, reset)

	if stats := formatBreakdown(p.Stats[week]); stats != "" {
		line(w, "      %s%s%s", dim, stats, reset)
	}
}

// bgTint renders the colorizer output as a background color, pre-blending
// the alpha against the terminal's dark background.
func bgTint(c controller.Color) string {
	r := int(float64(c.R) * c.A)
	g := int(float64(c.G) * c.A)
	return fmt.Sprintf("\x1b[48;2;%d;%d;0m", r, g)
}

func statusStyle(s controller.MatchupStatus) string {
	switch s {
	case controller.StatusWinning:
		return fgGreen
	case controller.StatusLosing:
		return fgRed
	default:
		return fgYellow
	}
}

func formatBreakdown(s model.StatLine) string {
	breakdown := s.DisplayBreakdown()
	if len(breakdown) == 0 {
		return ""
	}

	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %g", name, breakdown[name]))
	}
	return strings.Join(parts, "  ")
}

func line(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\r\n", args...)
}
