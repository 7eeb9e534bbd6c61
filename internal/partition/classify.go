package partition

import (
	"fmt"
	"sort"

	"github.com/createsejin/dock-sorter/internal/model"
)

// classifyPriorities builds the priority map for all non-exception docks.
// Exception membership suppresses any priority entry. A dock listed in
// both priority inputs is classified first (first-priority wins). Docks
// outside [min, max] produce a warning and no entry.
//
// Docks with no entry are third priority; that default is applied lazily
// at grouping time rather than materialized here, so the map stays
// proportional to the explicit assignments.
func classifyPriorities(first, second []int, exception map[int]bool, min, max int) (map[int]model.Priority, []string) {
	priorities := make(map[int]model.Priority)
	var warnings []string

	for _, dock := range sortedUnique(first) {
		if dock < min || dock > max {
			warnings = append(warnings, fmt.Sprintf(
				"first priority dock %d is outside the specified range [%d-%d] and will be ignored", dock, min, max))
			continue
		}
		if exception[dock] {
			continue
		}
		priorities[dock] = model.PriorityFirst
	}

	for _, dock := range sortedUnique(second) {
		if dock < min || dock > max {
			warnings = append(warnings, fmt.Sprintf(
				"second priority dock %d is outside the specified range [%d-%d] and will be ignored", dock, min, max))
			continue
		}
		if exception[dock] {
			continue
		}
		if _, exists := priorities[dock]; exists {
			// Already claimed by the first-priority pass.
			continue
		}
		priorities[dock] = model.PrioritySecond
	}

	return priorities, warnings
}

// sortedUnique returns a sorted copy of docks with duplicates removed.
// Iterating the priority inputs in this order keeps warning order
// deterministic across runs.
func sortedUnique(docks []int) []int {
	if len(docks) == 0 {
		return nil
	}
	out := make([]int, len(docks))
	copy(out, docks)
	sort.Ints(out)

	unique := out[:1]
	for _, d := range out[1:] {
		if d != unique[len(unique)-1] {
			unique = append(unique, d)
		}
	}
	return unique
}
