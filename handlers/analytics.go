package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"focusos/analytics"
)

// AnalyticsResponse bundles every derived dataset the dashboard
// renders from one history fetch.
type AnalyticsResponse struct {
	Streak        int                         `json:"streak"`
	Heatmap       []analytics.HeatmapDay      `json:"heatmap"`
	Categories    map[string]analytics.Rollup `json:"categories"`
	Timeline      []analytics.TimelinePoint   `json:"timeline"`
	TotalFocused  float64                     `json:"totalFocused"`
	TotalAssigned float64                     `json:"totalAssigned"`
	Efficiency    float64                     `json:"efficiency"`
}

// HandleAnalytics computes streak, heatmap, rollups, timeline and
// efficiency server-side.
//
// Query params: window=<n days> or start/end (YYYY-MM-DD, inclusive);
// neither selects the full history. category filters the timeline.
// heatmapDays sizes the heatmap window (default 89, i.e. 90 cells);
// heatmapCap overrides the intensity ceiling.
//
// The streak and heatmap always run over the full history: both are
// anchored at today by definition and windowing them would just shift
// results.
func (d *Deps) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	entries, err := d.Entries.ListAll(r.Context(), owner(r))
	if err != nil {
		log.Printf("analytics load failed: %v", err)
		jsonError(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	today := d.Today()

	window := analytics.Window{Kind: analytics.WindowAll}
	if start, end := q.Get("start"), q.Get("end"); start != "" && end != "" {
		if !validDate(start) || !validDate(end) {
			jsonError(w, "Invalid range, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		window = analytics.Window{Kind: analytics.WindowCustomRange, Start: start, End: end}
	} else if ws := q.Get("window"); ws != "" && ws != "all" {
		n, err := strconv.Atoi(ws)
		if err != nil || n < 0 {
			jsonError(w, "Invalid window, expected a day count or 'all'", http.StatusBadRequest)
			return
		}
		window = analytics.LastDays(n)
	}

	heatmapDays := 89
	if hd := q.Get("heatmapDays"); hd != "" {
		n, err := strconv.Atoi(hd)
		if err != nil || n < 0 {
			jsonError(w, "Invalid heatmapDays", http.StatusBadRequest)
			return
		}
		heatmapDays = n
	}
	capHours := 0.0
	if hc := q.Get("heatmapCap"); hc != "" {
		f, err := strconv.ParseFloat(hc, 64)
		if err != nil || f <= 0 {
			jsonError(w, "Invalid heatmapCap", http.StatusBadRequest)
			return
		}
		capHours = f
	}

	windowed := analytics.FilterByWindow(entries, window, today)
	focused, assigned := analytics.Totals(windowed)

	jsonOK(w, AnalyticsResponse{
		Streak:        analytics.ComputeStreak(entries, today),
		Heatmap:       analytics.BuildHeatmapSeries(entries, heatmapDays, today, capHours),
		Categories:    analytics.BuildCategoryRollup(windowed),
		Timeline:      analytics.BuildDailyTimeline(windowed, q.Get("category")),
		TotalFocused:  focused,
		TotalAssigned: assigned,
		Efficiency:    analytics.Efficiency(focused, assigned),
	})
}

func validDate(s string) bool {
	_, err := time.Parse(analytics.DateFormat, s)
	return err == nil
}
