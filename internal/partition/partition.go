package partition

import (
	"github.com/createsejin/dock-sorter/internal/model"
)

// Partition runs the full engine: exception resolution, priority
// classification, then one forward scan that assigns every dock in
// [Min, Max] to exactly one output group.
//
// The scan works as follows. For each unclaimed dock in ascending order:
//   - If the dock is the smallest member of a resolved exception group,
//     that group is emitted verbatim and all its members are claimed.
//     Non-minimum exception members never start anything — they were
//     claimed when their group was emitted and are simply skipped.
//   - Otherwise a regular group is seeded at the dock. The group's
//     capacity comes from the seed's priority class. It then absorbs the
//     following docks until one of the stop conditions fires: the
//     candidate is claimed or an exception member, the candidate outranks
//     the seed, a strict flag forbids mixing, or the group is full.
//
// The stop conditions encode "priority never degrades within a group": a
// more important dock always starts fresh, while equal-or-less important
// docks may be absorbed unless the seed's class is strict.
//
// Partition validates its input and refuses to run on fatal errors
// (zero capacity, reversed range); recoverable anomalies surface as
// Result.Warnings.
func Partition(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	fpp := in.FirstPerPage
	if fpp == 0 {
		fpp = in.PerPage
	}
	spp := in.SecondPerPage
	if spp == 0 {
		spp = in.PerPage
	}
	gpp := in.PerPage

	exceptionGroups, exceptionDocks, warnings := resolveExceptionGroups(in.ExceptionGroups, in.Min, in.Max)

	priorities, classifyWarnings := classifyPriorities(in.FirstPriority, in.SecondPriority, exceptionDocks, in.Min, in.Max)
	warnings = append(warnings, classifyWarnings...)

	// Resolved groups are internally sorted, so the first element is the
	// group minimum — the dock that triggers emission during the scan.
	groupByStart := make(map[int]model.Group, len(exceptionGroups))
	for _, g := range exceptionGroups {
		groupByStart[g[0]] = g
	}

	priorityOf := func(dock int) model.Priority {
		if p, ok := priorities[dock]; ok {
			return p
		}
		return model.PriorityThird
	}

	capacityFor := func(p model.Priority) int {
		switch p {
		case model.PriorityFirst:
			return fpp
		case model.PrioritySecond:
			return spp
		default:
			return gpp
		}
	}

	// Claimed tracking as a boolean array indexed by offset from Min —
	// the range is bounded and dense, so this beats a hash set.
	claimed := make([]bool, in.Max-in.Min+1)

	var groups []model.Group

	for dock := in.Min; dock <= in.Max; dock++ {
		if claimed[dock-in.Min] {
			continue
		}

		if exGroup, ok := groupByStart[dock]; ok {
			groups = append(groups, exGroup)
			for _, member := range exGroup {
				claimed[member-in.Min] = true
			}
			continue
		}

		if exceptionDocks[dock] {
			// Exception member that is not its group's minimum; it is
			// claimed when the group is emitted.
			continue
		}

		group := model.Group{dock}
		claimed[dock-in.Min] = true

		seedPriority := priorityOf(dock)
		capacity := capacityFor(seedPriority)

		for candidate := dock + 1; candidate <= in.Max && len(group) < capacity; candidate++ {
			if claimed[candidate-in.Min] || exceptionDocks[candidate] {
				break
			}

			candidatePriority := priorityOf(candidate)

			if candidatePriority.MoreImportantThan(seedPriority) {
				break
			}
			if seedPriority == model.PriorityFirst && in.StrictFirst && candidatePriority != model.PriorityFirst {
				break
			}
			if seedPriority == model.PrioritySecond && in.StrictSecond && candidatePriority != model.PrioritySecond {
				break
			}

			group = append(group, candidate)
			claimed[candidate-in.Min] = true
		}

		groups = append(groups, group)
	}

	return &Result{
		Groups:          groups,
		Priorities:      priorities,
		ExceptionDocks:  exceptionDocks,
		ExceptionGroups: exceptionGroups,
		FirstPerPage:    fpp,
		SecondPerPage:   spp,
		GeneralPerPage:  gpp,
		Warnings:        warnings,
	}, nil
}
