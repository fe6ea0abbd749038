// Package analytics derives streaks, heatmaps, rollups and efficiency
// ratios from a raw list of entries. Every function is pure: input
// slices are never mutated, there is no I/O, and degenerate input
// (empty lists, duplicate dates, zero-hour sessions) yields degenerate
// output rather than an error.
//
// The caller passes "today" explicitly, already resolved in the
// system's canonical time zone. Dates are fixed-format YYYY-MM-DD
// strings throughout and are never compared as timestamps.
package analytics

import (
	"time"

	"focusos/models"
)

// DateFormat is the canonical YYYY-MM-DD layout used for all entry dates.
const DateFormat = "2006-01-02"

// activeDates returns the set of dates with total focused hours > 0.
// Duplicate-date entries accumulate before the threshold check, so a
// day split across two records still counts once.
func activeDates(entries []models.Entry) map[string]bool {
	totals := make(map[string]float64, len(entries))
	for i := range entries {
		totals[entries[i].Date] += entries[i].TotalFocused()
	}
	active := make(map[string]bool, len(totals))
	for date, hours := range totals {
		if hours > 0 {
			active[date] = true
		}
	}
	return active
}

// ComputeStreak counts consecutive active days ending at today or
// yesterday. A day is active when its entries sum to focused > 0;
// entries that exist but log zero hours do not keep a streak alive.
// Missing both today and yesterday breaks the chain and returns 0.
func ComputeStreak(entries []models.Entry, today time.Time) int {
	active := activeDates(entries)
	if len(active) == 0 {
		return 0
	}

	todayStr := today.Format(DateFormat)
	yesterdayStr := today.AddDate(0, 0, -1).Format(DateFormat)

	if !active[todayStr] && !active[yesterdayStr] {
		return 0
	}

	// Walk backward one calendar day at a time, starting from today
	// if it is active, else from yesterday.
	cursor := today
	if !active[todayStr] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for active[cursor.Format(DateFormat)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
