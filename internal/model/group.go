package model

import (
	"strconv"
	"strings"
)

// Group is one unit of final output: an ordered, non-empty sequence of
// dock numbers printed together on a single line. A Group is either an
// exception group (emitted verbatim) or a regular capacity-bounded group
// built by the partitioner.
type Group []int

// Min returns the smallest member of the group. For the ascending groups
// the engine produces this is the first element; Min tolerates arbitrary
// order so it can also serve as the sort key while exception groups are
// still being canonicalized.
func (g Group) Min() int {
	if len(g) == 0 {
		return 0
	}
	min := g[0]
	for _, d := range g[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

// Contains reports whether dock is a member of the group.
func (g Group) Contains(dock int) bool {
	for _, d := range g {
		if d == dock {
			return true
		}
	}
	return false
}

// String returns the members as a comma-separated list, e.g. "51, 52, 53".
func (g Group) String() string {
	parts := make([]string, len(g))
	for i, d := range g {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}
