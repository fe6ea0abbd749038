package analytics

import (
	"sort"
	"time"

	"focusos/models"
)

// DefaultHeatmapCap is the focused-hours ceiling that maps to full
// heatmap intensity. Presentation scaling only; it never alters hours.
const DefaultHeatmapCap = 6.0

// HeatmapDay is one cell of the consistency heatmap.
type HeatmapDay struct {
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	Intensity float64 `json:"intensity"`
}

// BuildHeatmapSeries produces exactly windowDays+1 chronological cells
// ending at today, one per calendar day. Days without an entry are
// zero-filled rather than dropped. Duplicate-date entries accumulate.
// capHours <= 0 falls back to DefaultHeatmapCap.
func BuildHeatmapSeries(entries []models.Entry, windowDays int, today time.Time, capHours float64) []HeatmapDay {
	if capHours <= 0 {
		capHours = DefaultHeatmapCap
	}
	if windowDays < 0 {
		windowDays = 0
	}

	hoursByDate := make(map[string]float64, len(entries))
	for i := range entries {
		hoursByDate[entries[i].Date] += entries[i].TotalFocused()
	}

	series := make([]HeatmapDay, 0, windowDays+1)
	start := today.AddDate(0, 0, -windowDays)
	for d := 0; d <= windowDays; d++ {
		date := start.AddDate(0, 0, d).Format(DateFormat)
		hours := hoursByDate[date]
		intensity := hours / capHours
		if intensity > 1 {
			intensity = 1
		}
		series = append(series, HeatmapDay{Date: date, Hours: hours, Intensity: intensity})
	}
	return series
}

// TimelinePoint is one day's focused/assigned totals.
type TimelinePoint struct {
	Date     string  `json:"date"`
	Focused  float64 `json:"focused"`
	Assigned float64 `json:"assigned"`
}

// BuildDailyTimeline sums each day's sessions into one point, sorted
// ascending by date. A non-empty category restricts the sums to
// sessions whose category matches it exactly; entries whose sessions
// all miss the filter still appear as zero points so the timeline
// keeps one element per input date.
func BuildDailyTimeline(entries []models.Entry, category string) []TimelinePoint {
	byDate := make(map[string]*TimelinePoint, len(entries))
	for i := range entries {
		e := &entries[i]
		p, ok := byDate[e.Date]
		if !ok {
			p = &TimelinePoint{Date: e.Date}
			byDate[e.Date] = p
		}
		for _, s := range e.Sessions {
			if category != "" && s.Category != category {
				continue
			}
			p.Focused += s.Focused
			p.Assigned += s.Assigned
		}
	}

	timeline := make([]TimelinePoint, 0, len(byDate))
	for _, p := range byDate {
		timeline = append(timeline, *p)
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date < timeline[j].Date
	})
	return timeline
}
