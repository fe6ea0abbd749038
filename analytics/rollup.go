package analytics

import (
	"focusos/models"
)

// Rollup holds summed hours for one category.
type Rollup struct {
	Focused  float64 `json:"focused"`
	Assigned float64 `json:"assigned"`
}

// BuildCategoryRollup sums focused and assigned hours per category
// across every session of every entry. Keys match the raw category
// string: case-sensitive, untrimmed. "DSA" and "dsa " are distinct
// buckets on purpose; normalizing would silently merge categories the
// user meant to keep apart. Map iteration order is unspecified, so
// callers wanting a ranking sort themselves.
func BuildCategoryRollup(entries []models.Entry) map[string]Rollup {
	rollup := make(map[string]Rollup)
	for i := range entries {
		for _, s := range entries[i].Sessions {
			r := rollup[s.Category]
			r.Focused += s.Focused
			r.Assigned += s.Assigned
			rollup[s.Category] = r
		}
	}
	return rollup
}

// Totals sums focused and assigned hours across all entries.
func Totals(entries []models.Entry) (focused, assigned float64) {
	for i := range entries {
		focused += entries[i].TotalFocused()
		assigned += entries[i].TotalAssigned()
	}
	return focused, assigned
}

// Efficiency expresses focused against assigned hours as a percentage.
// Zero assigned hours yields 0 rather than a division by zero; the
// result is unrounded, rounding belongs to presentation.
func Efficiency(totalFocused, totalAssigned float64) float64 {
	if totalAssigned == 0 {
		return 0
	}
	return totalFocused / totalAssigned * 100
}
