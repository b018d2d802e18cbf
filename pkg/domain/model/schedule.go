package model

import (
	"fmt"
	"time"
)

// Fixed week grid geometry for the timeline view.
const (
	// ColumnWidth is the pixel width of one week column.
	ColumnWidth = 120
	// GridWeeks is the number of weeks the visible grid spans from the
	// global base date. Phases beyond it are laid out off-grid; the
	// calculator does not clip.
	GridWeeks = 16
)

const oneWeek = 7 * 24 * time.Hour

// PhaseLayout is the horizontal pixel span of one phase bar on the week grid.
type PhaseLayout struct {
	LeftPx  float64 `json:"left_px"`
	WidthPx float64 `json:"width_px"`
}

// WeekColumn is one header cell of the visible grid.
type WeekColumn struct {
	Label string `json:"label"`
	Dates string `json:"dates"`
	Start string `json:"start"`
}

// mondayOf returns the Monday of the week containing t, preserving the
// time-of-day of t the way the original date arithmetic does.
func mondayOf(t time.Time) time.Time {
	day := int(t.Weekday())
	diff := 1 - day
	if day == 0 { // Sunday rolls back to the previous Monday
		diff = -6
	}
	return t.AddDate(0, 0, diff)
}

// parseStartDate accepts the date formats the dashboard stores.
func parseStartDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BaseDate returns the global schedule reference: the Monday of the week
// containing the earliest start date among entities. When no start date
// parses, it falls back to the Monday of the week containing now.
func BaseDate(entities []*AuditEntity, now time.Time) time.Time {
	var earliest time.Time
	found := false
	for _, e := range entities {
		t, ok := parseStartDate(e.StartDate)
		if !ok {
			continue
		}
		if !found || t.Before(earliest) {
			earliest = t
			found = true
		}
	}
	if !found {
		return mondayOf(now)
	}
	return mondayOf(earliest)
}

// EntityOffsetWeeks returns the fractional number of weeks between the
// global base date and the entity's start date, floored at zero. The value
// is kept as floating point; it is not truncated before use.
func EntityOffsetWeeks(entity *AuditEntity, base time.Time) float64 {
	start, ok := parseStartDate(entity.StartDate)
	if !ok {
		return 0
	}
	weeks := float64(start.Sub(base)) / float64(oneWeek)
	if weeks < 0 {
		return 0
	}
	return weeks
}

// LayoutPhase places a phase bar on the week grid relative to the global
// base date: the entity offset plus the phase's own 1-based start week.
func LayoutPhase(entity *AuditEntity, phase *Phase, base time.Time) PhaseLayout {
	absoluteStartWeek := EntityOffsetWeeks(entity, base) + float64(phase.StartWeek-1)
	return PhaseLayout{
		LeftPx:  absoluteStartWeek * ColumnWidth,
		WidthPx: float64(phase.DurationWeeks) * ColumnWidth,
	}
}

// GridColumns generates the visible week headers (Mon-Fri date ranges)
// starting from the base date.
func GridColumns(base time.Time) []WeekColumn {
	columns := make([]WeekColumn, 0, GridWeeks)
	for i := 0; i < GridWeeks; i++ {
		start := base.AddDate(0, 0, 7*i)
		end := start.AddDate(0, 0, 4)
		columns = append(columns, WeekColumn{
			Label: fmt.Sprintf("Sem. %d", i+1),
			Dates: fmt.Sprintf("%02d/%02d - %02d/%02d", start.Day(), int(start.Month()), end.Day(), int(end.Month())),
			Start: start.Format("2006-01-02"),
		})
	}
	return columns
}
