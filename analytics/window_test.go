package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focusos/models"
)

func dates(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Date
	}
	return out
}

func TestFilterByWindowAll(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-01", focus("DSA", 1, 0)),
		day("2023-06-15", focus("DSA", 1, 0)),
	}
	got := FilterByWindow(entries, Window{Kind: WindowAll}, at("2024-01-05"))
	assert.Equal(t, dates(entries), dates(got))

	// The result is a copy; mutating it must not touch the input.
	got[0].Date = "1999-01-01"
	assert.Equal(t, "2024-01-01", entries[0].Date)
}

func TestFilterByWindowRelativeDays(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-05", focus("DSA", 1, 0)),
		day("2024-01-01", focus("DSA", 1, 0)),
		day("2023-12-29", focus("DSA", 1, 0)),
		day("2023-12-28", focus("DSA", 1, 0)),
	}
	got := FilterByWindow(entries, LastDays(7), at("2024-01-05"))
	// Cutoff is 2023-12-29: seven days back plus the tolerance day.
	assert.Equal(t, []string{"2024-01-05", "2024-01-01", "2023-12-29"}, dates(got))
}

func TestFilterByWindowCustomRangeInclusive(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-01", focus("DSA", 1, 0)),
		day("2024-01-02", focus("DSA", 1, 0)),
		day("2024-01-03", focus("DSA", 1, 0)),
		day("2024-01-04", focus("DSA", 1, 0)),
	}
	got := FilterByWindow(entries, Window{
		Kind:  WindowCustomRange,
		Start: "2024-01-02",
		End:   "2024-01-03",
	}, at("2024-01-05"))
	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, dates(got))
}

func TestFilterByWindowIgnoresSessionContent(t *testing.T) {
	// A zero-hour entry inside the window stays in.
	entries := []models.Entry{day("2024-01-05", focus("DSA", 0, 0))}
	got := FilterByWindow(entries, LastDays(7), at("2024-01-05"))
	assert.Len(t, got, 1)
}

func TestFilterByWindowEmpty(t *testing.T) {
	assert.Empty(t, FilterByWindow(nil, LastDays(7), at("2024-01-05")))
	assert.Empty(t, FilterByWindow(nil, Window{Kind: WindowAll}, at("2024-01-05")))
}
