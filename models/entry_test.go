package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSessionsSumsFocusedOnMatch(t *testing.T) {
	existing := []Session{
		{Category: "DSA", SubCategory: "Graphs", Tags: []string{}, Focused: 2, Assigned: 3},
	}
	incoming := []Session{
		{Category: "DSA", SubCategory: "Graphs", Focused: 1.5, Assigned: 1},
	}

	merged := MergeSessions(existing, incoming)
	require.Len(t, merged, 1)
	assert.Equal(t, 3.5, merged[0].Focused)
	// Assigned stays as stored; merge only adds focused hours.
	assert.Equal(t, 3.0, merged[0].Assigned)
}

func TestMergeSessionsAppendsOnMismatch(t *testing.T) {
	existing := []Session{
		{Category: "DSA", SubCategory: "Graphs", Tags: []string{}, Focused: 2, Assigned: 3},
	}
	incoming := []Session{
		{Category: "DSA", SubCategory: "Trees", Focused: 1, Assigned: 0},
		{Category: "Dev", SubCategory: "Graphs", Focused: 0.5, Assigned: 0},
	}

	merged := MergeSessions(existing, incoming)
	require.Len(t, merged, 3)
	assert.Equal(t, "Trees", merged[1].SubCategory)
	assert.Equal(t, "Dev", merged[2].Category)
}

func TestMergeSessionsMatchIsExact(t *testing.T) {
	existing := []Session{
		{Category: "DSA", SubCategory: "Graphs", Tags: []string{}, Focused: 2, Assigned: 0},
	}
	incoming := []Session{
		{Category: "dsa", SubCategory: "Graphs", Focused: 1, Assigned: 0},
	}

	// Case differs: distinct session, not a merge target.
	merged := MergeSessions(existing, incoming)
	require.Len(t, merged, 2)
}

func TestMergeSessionsDoesNotMutateInputs(t *testing.T) {
	existing := []Session{
		{Category: "DSA", SubCategory: "Graphs", Tags: []string{}, Focused: 2, Assigned: 3},
	}
	incoming := []Session{
		{Category: "DSA", SubCategory: "Graphs", Focused: 1, Assigned: 0},
	}

	MergeSessions(existing, incoming)
	assert.Equal(t, 2.0, existing[0].Focused)
	assert.Equal(t, 1.0, incoming[0].Focused)
}

func TestMergeSessionsDefaultsTags(t *testing.T) {
	merged := MergeSessions(nil, []Session{{Category: "DSA", SubCategory: "x", Focused: 1}})
	require.Len(t, merged, 1)
	assert.NotNil(t, merged[0].Tags)
}

func TestEntryTotals(t *testing.T) {
	e := Entry{Sessions: []Session{
		{Focused: 1.5, Assigned: 2},
		{Focused: 0.5, Assigned: 1},
	}}
	assert.Equal(t, 2.0, e.TotalFocused())
	assert.Equal(t, 3.0, e.TotalAssigned())

	empty := Entry{}
	assert.Equal(t, 0.0, empty.TotalFocused())
	assert.Equal(t, 0.0, empty.TotalAssigned())
}
