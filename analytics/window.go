package analytics

import (
	"time"

	"focusos/models"
)

// WindowKind selects how FilterByWindow interprets a Window.
type WindowKind int

const (
	// WindowAll keeps every entry.
	WindowAll WindowKind = iota
	// WindowRelativeDays keeps entries from the last N days (inclusive
	// of today, with a one-day tolerance at the far boundary).
	WindowRelativeDays
	// WindowCustomRange keeps entries with Start <= date <= End.
	WindowCustomRange
)

// Window describes a date-only selection over entries.
type Window struct {
	Kind  WindowKind
	N     int    // WindowRelativeDays
	Start string // WindowCustomRange, YYYY-MM-DD
	End   string // WindowCustomRange, YYYY-MM-DD
}

// LastDays is shorthand for a relative window of n days.
func LastDays(n int) Window {
	return Window{Kind: WindowRelativeDays, N: n}
}

// FilterByWindow returns the entries whose date falls inside w.
// Only the date field is consulted; session content never affects
// inclusion. Lexicographic comparison is valid because dates are
// fixed-format YYYY-MM-DD strings. Order of the result follows input
// order; callers re-sort as needed.
func FilterByWindow(entries []models.Entry, w Window, today time.Time) []models.Entry {
	switch w.Kind {
	case WindowRelativeDays:
		// The cutoff sits a full N days back rather than N-1, which
		// absorbs zone rounding at the boundary.
		cutoff := today.AddDate(0, 0, -w.N).Format(DateFormat)
		out := make([]models.Entry, 0, len(entries))
		for i := range entries {
			if entries[i].Date >= cutoff {
				out = append(out, entries[i])
			}
		}
		return out
	case WindowCustomRange:
		out := make([]models.Entry, 0, len(entries))
		for i := range entries {
			if entries[i].Date >= w.Start && entries[i].Date <= w.End {
				out = append(out, entries[i])
			}
		}
		return out
	default:
		out := make([]models.Entry, len(entries))
		copy(out, entries)
		return out
	}
}
