package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusos/models"
)

func TestBuildHeatmapSeriesLengthAndZeroFill(t *testing.T) {
	// One entry in a 90-day window: 90 cells, 89 of them zero.
	entries := []models.Entry{day("2024-01-03", focus("DSA", 2, 0))}
	series := BuildHeatmapSeries(entries, 89, at("2024-01-05"), 0)
	require.Len(t, series, 90)

	var zeroSum float64
	for _, cell := range series {
		if cell.Date != "2024-01-03" {
			zeroSum += cell.Hours
		}
	}
	assert.Equal(t, 0.0, zeroSum)

	assert.Equal(t, "2023-10-08", series[0].Date)
	assert.Equal(t, "2024-01-05", series[89].Date)
}

func TestBuildHeatmapSeriesEmptyInput(t *testing.T) {
	series := BuildHeatmapSeries(nil, 89, at("2024-01-05"), 0)
	require.Len(t, series, 90)
	for _, cell := range series {
		assert.Equal(t, 0.0, cell.Hours)
		assert.Equal(t, 0.0, cell.Intensity)
	}
}

func TestBuildHeatmapSeriesChronological(t *testing.T) {
	series := BuildHeatmapSeries(nil, 6, at("2024-01-05"), 0)
	require.Len(t, series, 7)
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i-1].Date < series[i].Date)
	}
}

func TestBuildHeatmapSeriesIntensityCap(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-04", focus("DSA", 3, 0)),
		day("2024-01-05", focus("DSA", 9, 0)),
	}
	series := BuildHeatmapSeries(entries, 1, at("2024-01-05"), 0)
	require.Len(t, series, 2)

	assert.Equal(t, 0.5, series[0].Intensity)
	// Nine hours clamps to full intensity without touching hours.
	assert.Equal(t, 1.0, series[1].Intensity)
	assert.Equal(t, 9.0, series[1].Hours)
}

func TestBuildHeatmapSeriesCustomCap(t *testing.T) {
	entries := []models.Entry{day("2024-01-05", focus("DSA", 2, 0))}
	series := BuildHeatmapSeries(entries, 0, at("2024-01-05"), 4)
	require.Len(t, series, 1)
	assert.Equal(t, 0.5, series[0].Intensity)
}

func TestBuildHeatmapSeriesDuplicateDatesAccumulate(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-05", focus("DSA", 1, 0)),
		day("2024-01-05", focus("Dev", 2, 0)),
	}
	series := BuildHeatmapSeries(entries, 0, at("2024-01-05"), 0)
	require.Len(t, series, 1)
	assert.Equal(t, 3.0, series[0].Hours)
}

func TestBuildDailyTimelineSortsAscending(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-05", focus("DSA", 2, 3)),
		day("2024-01-01", focus("DSA", 1, 1)),
		day("2024-01-03", focus("Dev", 4, 2)),
	}
	timeline := BuildDailyTimeline(entries, "")
	require.Len(t, timeline, 3)
	assert.Equal(t, "2024-01-01", timeline[0].Date)
	assert.Equal(t, "2024-01-03", timeline[1].Date)
	assert.Equal(t, "2024-01-05", timeline[2].Date)
	assert.Equal(t, 4.0, timeline[1].Focused)
	assert.Equal(t, 2.0, timeline[1].Assigned)
}

func TestBuildDailyTimelineSumsSessionsPerDay(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-05", focus("DSA", 2, 3), focus("Dev", 1.5, 1)),
	}
	timeline := BuildDailyTimeline(entries, "")
	require.Len(t, timeline, 1)
	assert.Equal(t, 3.5, timeline[0].Focused)
	assert.Equal(t, 4.0, timeline[0].Assigned)
}

func TestBuildDailyTimelineCategoryFilter(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-04", focus("DSA", 2, 3), focus("Dev", 1, 1)),
		day("2024-01-05", focus("Dev", 4, 2)),
	}
	timeline := BuildDailyTimeline(entries, "DSA")
	require.Len(t, timeline, 2)
	assert.Equal(t, 2.0, timeline[0].Focused)
	assert.Equal(t, 3.0, timeline[0].Assigned)
	// The Dev-only day stays as a zero point.
	assert.Equal(t, 0.0, timeline[1].Focused)
}

func TestBuildDailyTimelineMergesDuplicateDates(t *testing.T) {
	entries := []models.Entry{
		day("2024-01-05", focus("DSA", 1, 0)),
		day("2024-01-05", focus("DSA", 2, 1)),
	}
	timeline := BuildDailyTimeline(entries, "")
	require.Len(t, timeline, 1)
	assert.Equal(t, 3.0, timeline[0].Focused)
	assert.Equal(t, 1.0, timeline[0].Assigned)
}
