package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createsejin/dock-sorter/internal/model"
)

// TestPartition_PlainChunks covers the degenerate case with no priorities
// and no exceptions: the range splits into fixed-size ascending chunks.
// min=1, max=5, per-page=2 → [1,2], [3,4], [5].
func TestPartition_PlainChunks(t *testing.T) {
	res, err := Partition(Input{Min: 1, Max: 5, PerPage: 2})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1, 2}, {3, 4}, {5}}, res.Groups)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 2, res.GeneralPerPage)
	assert.Equal(t, 2, res.FirstPerPage, "unset fpp defaults to per-page")
	assert.Equal(t, 2, res.SecondPerPage, "unset spp defaults to per-page")
}

// TestPartition_FirstPriorityCapacity verifies that a first-priority seed
// uses the first-priority capacity and that a more important dock always
// starts a new group. min=1, max=5, first={3}, per-page=2, fpp=1 →
// [1,2], [3], [4,5].
func TestPartition_FirstPriorityCapacity(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 5,
		FirstPriority: []int{3},
		PerPage:       2,
		FirstPerPage:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1, 2}, {3}, {4, 5}}, res.Groups)
	assert.Equal(t, 1, res.FirstPerPage)
	assert.Equal(t, model.PriorityFirst, res.Priorities[3])
}

// TestPartition_ExceptionEmittedAtMinimum covers spec scenario 3: the
// exception group [2,4] is emitted when dock 2 is reached, and dock 3 —
// not an exception member — is processed as a normal dock afterwards.
// min=1, max=6, per-page=3 → [1], [2,4], [3], [5,6].
func TestPartition_ExceptionEmittedAtMinimum(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 6,
		ExceptionGroups: [][]int{{2, 4}},
		PerPage:         3,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1}, {2, 4}, {3}, {5, 6}}, res.Groups)
	assert.True(t, res.ExceptionDocks[2])
	assert.True(t, res.ExceptionDocks[4])
	assert.False(t, res.ExceptionDocks[3])
}

// TestPartition_DuplicateExceptionDock covers spec scenario 4: dock 2
// claimed by both [1,2] and [2,3] stays in the first group, the second
// becomes [3], and a warning is recorded.
func TestPartition_DuplicateExceptionDock(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 5,
		ExceptionGroups: [][]int{{1, 2}, {2, 3}},
		PerPage:         10,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1, 2}, {3}, {4, 5}}, res.Groups)
	assert.Equal(t, []model.Group{{1, 2}, {3}}, res.ExceptionGroups)

	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "dock 2")
}

// TestPartition_SingleDockRange covers spec scenario 5: a one-dock range
// yields one single-member group regardless of other input.
func TestPartition_SingleDockRange(t *testing.T) {
	res, err := Partition(Input{
		Min: 10, Max: 10,
		FirstPriority:   []int{10},
		ExceptionGroups: [][]int{{3}},
		PerPage:         4,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{10}}, res.Groups)
	require.Len(t, res.Warnings, 1, "exception dock 3 is out of range")
	assert.Contains(t, res.Warnings[0], "exception dock 3")
}

// TestPartition_FatalValidation covers spec scenario 6 plus the other
// fatal preconditions: the engine refuses to run and produces no groups.
func TestPartition_FatalValidation(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{
			name:  "zero per-page",
			input: Input{Min: 1, Max: 5, PerPage: 0},
		},
		{
			name:  "min greater than max",
			input: Input{Min: 6, Max: 5, PerPage: 2},
		},
		{
			name:  "negative first-priority capacity",
			input: Input{Min: 1, Max: 5, PerPage: 2, FirstPerPage: -1},
		},
		{
			name:  "negative second-priority capacity",
			input: Input{Min: 1, Max: 5, PerPage: 2, SecondPerPage: -1},
		},
		{
			name:  "negative minimum",
			input: Input{Min: -1, Max: 5, PerPage: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Partition(tt.input)
			assert.Error(t, err)
			assert.Nil(t, res)
		})
	}
}

// TestPartition_PriorityTransitionStartsNewGroup verifies that a group
// stops extending when the next dock outranks the seed: the first-priority
// dock starts its own group even though the current group has room.
func TestPartition_PriorityTransitionStartsNewGroup(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 5,
		FirstPriority: []int{3},
		PerPage:       3,
	})
	require.NoError(t, err)

	// [1,2] stops short of its capacity of 3 because dock 3 outranks
	// the third-priority seed; dock 3 then absorbs the lower-priority
	// docks 4 and 5 (no strict flag).
	assert.Equal(t, []model.Group{{1, 2}, {3, 4, 5}}, res.Groups)
}

// TestPartition_SecondBetweenThirdAndFirst exercises all three classes in
// one range: a second-priority seed absorbs third-priority docks but
// stops at a first-priority dock.
func TestPartition_SecondBetweenThirdAndFirst(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 5,
		FirstPriority:  []int{4},
		SecondPriority: []int{2},
		PerPage:        5,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1}, {2, 3}, {4, 5}}, res.Groups)
}

// TestPartition_StrictFirst verifies that with strict-first set, a group
// seeded by a first-priority dock absorbs only first-priority docks.
func TestPartition_StrictFirst(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 4,
		FirstPriority: []int{1, 2},
		PerPage:       4,
		StrictFirst:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1, 2}, {3, 4}}, res.Groups)
}

// TestPartition_StrictFirstDisabled is the same scenario without the
// flag: the first-priority group keeps absorbing lower-priority docks.
func TestPartition_StrictFirstDisabled(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 4,
		FirstPriority: []int{1, 2},
		PerPage:       4,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1, 2, 3, 4}}, res.Groups)
}

// TestPartition_StrictSecond verifies the analogous rule for
// second-priority seeds.
func TestPartition_StrictSecond(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 4,
		SecondPriority: []int{1, 2},
		PerPage:        4,
		StrictSecond:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1, 2}, {3, 4}}, res.Groups)
}

// TestPartition_FullyCoveredByExceptions verifies that a range fully
// claimed by exception groups yields exactly one output group per
// exception group and no regular groups.
func TestPartition_FullyCoveredByExceptions(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 4,
		ExceptionGroups: [][]int{{3, 4}, {1, 2}},
		PerPage:         2,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{{1, 2}, {3, 4}}, res.Groups)
}

// TestPartition_NonContiguousException verifies that a gappy exception
// group is emitted intact and the docks inside its span are grouped
// normally when reached.
func TestPartition_NonContiguousException(t *testing.T) {
	res, err := Partition(Input{
		Min: 51, Max: 60,
		ExceptionGroups: [][]int{{52, 55, 58}},
		PerPage:         4,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Group{
		{51},
		{52, 55, 58},
		{53, 54},
		{56, 57},
		{59, 60},
	}, res.Groups)
}

// TestPartition_CoverageAndExclusivity checks the core invariant on a
// busy input: the union of all groups is exactly {min..max} with no dock
// appearing twice.
func TestPartition_CoverageAndExclusivity(t *testing.T) {
	res, err := Partition(Input{
		Min: 51, Max: 78,
		FirstPriority:   []int{65, 66, 71},
		SecondPriority:  []int{56, 62, 66},
		ExceptionGroups: [][]int{{60, 61}, {74, 75, 76}},
		PerPage:         4,
		FirstPerPage:    2,
		StrictSecond:    true,
	})
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, g := range res.Groups {
		require.NotEmpty(t, g, "no empty groups")
		for _, d := range g {
			seen[d]++
		}
	}
	for d := 51; d <= 78; d++ {
		assert.Equal(t, 1, seen[d], "dock %d must appear exactly once", d)
	}
	assert.Len(t, seen, 78-51+1, "no docks outside the range")
}

// TestPartition_PriorityNeverDegrades checks that within any regular
// group no member outranks the seed, and that capacities are respected.
func TestPartition_PriorityNeverDegrades(t *testing.T) {
	in := Input{
		Min: 1, Max: 30,
		FirstPriority:  []int{5, 6, 17, 25},
		SecondPriority: []int{9, 10, 11, 26},
		PerPage:        3,
		FirstPerPage:   2,
		SecondPerPage:  4,
	}
	res, err := Partition(in)
	require.NoError(t, err)

	priorityOf := func(d int) model.Priority {
		if p, ok := res.Priorities[d]; ok {
			return p
		}
		return model.PriorityThird
	}
	capacityFor := map[model.Priority]int{
		model.PriorityFirst:  res.FirstPerPage,
		model.PrioritySecond: res.SecondPerPage,
		model.PriorityThird:  res.GeneralPerPage,
	}

	for _, g := range res.Groups {
		seed := priorityOf(g[0])
		assert.LessOrEqual(t, len(g), capacityFor[seed],
			"group %v exceeds the capacity for its seed class %s", g, seed)
		for _, d := range g[1:] {
			assert.False(t, priorityOf(d).MoreImportantThan(seed),
				"dock %d outranks the seed of group %v", d, g)
		}
	}
}

// TestPartition_ExceptionAtomicity checks that every resolved exception
// group appears as exactly one output group with its membership intact.
func TestPartition_ExceptionAtomicity(t *testing.T) {
	res, err := Partition(Input{
		Min: 1, Max: 20,
		FirstPriority:   []int{3, 12},
		ExceptionGroups: [][]int{{11, 13, 12}, {4, 5}},
		PerPage:         2,
	})
	require.NoError(t, err)

	for _, ex := range res.ExceptionGroups {
		matches := 0
		for _, g := range res.Groups {
			if len(g) == len(ex) && g.Min() == ex.Min() {
				assert.Equal(t, ex, g)
				matches++
			}
		}
		assert.Equal(t, 1, matches, "exception group %v must appear exactly once", ex)
	}

	// Dock 12 sits inside an exception group, so its first-priority
	// assignment is suppressed.
	_, hasEntry := res.Priorities[12]
	assert.False(t, hasEntry)
}

// TestPartition_Determinism runs the engine twice on a scrambled input and
// requires byte-identical results, including warning order.
func TestPartition_Determinism(t *testing.T) {
	in := Input{
		Min: 51, Max: 78,
		FirstPriority:   []int{71, 65, 66, 90},
		SecondPriority:  []int{62, 56, 3},
		ExceptionGroups: [][]int{{77, 75}, {60, 59, 100}},
		PerPage:         3,
	}

	first, err := Partition(in)
	require.NoError(t, err)
	second, err := Partition(in)
	require.NoError(t, err)

	assert.Equal(t, first.Groups, second.Groups)
	assert.Equal(t, first.ExceptionGroups, second.ExceptionGroups)
	assert.Equal(t, first.Priorities, second.Priorities)
	assert.Equal(t, first.Warnings, second.Warnings)
}
