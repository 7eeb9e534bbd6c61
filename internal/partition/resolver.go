package partition

import (
	"fmt"
	"sort"

	"github.com/createsejin/dock-sorter/internal/model"
)

// resolveExceptionGroups turns the raw exception inputs into the canonical
// group set. Per raw group, in input order: members outside [min, max] are
// dropped with a warning, the remainder is sorted and deduplicated, and
// members already claimed by an earlier group are dropped with a warning
// (first claim wins). Groups that end up empty disappear entirely.
//
// The finalized groups are re-sorted ascending by their smallest member —
// that ordering is what lets the partitioner treat "dock equals group
// minimum" as the emission trigger. The returned claimed set is the flat
// union of all group members.
func resolveExceptionGroups(raw [][]int, min, max int) ([]model.Group, map[int]bool, []string) {
	var groups []model.Group
	claimed := make(map[int]bool)
	var warnings []string

	for _, rawGroup := range raw {
		var inRange []int
		for _, dock := range rawGroup {
			if dock < min || dock > max {
				warnings = append(warnings, fmt.Sprintf(
					"exception dock %d is outside the specified range [%d-%d] and will be ignored", dock, min, max))
				continue
			}
			inRange = append(inRange, dock)
		}

		sort.Ints(inRange)

		var finalized model.Group
		prev := -1
		for _, dock := range inRange {
			if dock == prev {
				continue
			}
			prev = dock
			if claimed[dock] {
				warnings = append(warnings, fmt.Sprintf(
					"dock %d in exception group is already part of another exception group, ignoring", dock))
				continue
			}
			claimed[dock] = true
			finalized = append(finalized, dock)
		}

		if len(finalized) > 0 {
			groups = append(groups, finalized)
		}
	}

	// Canonical order: ascending by each group's smallest member, not by
	// input order.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Min() < groups[j].Min()
	})

	return groups, claimed, warnings
}
