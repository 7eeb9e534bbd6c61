package partition

import (
	"fmt"

	"github.com/createsejin/dock-sorter/internal/model"
)

// Input holds everything the engine needs for one partition run. The CLI
// layer has already expanded range syntax ("5-9") into flat integer lists,
// so the engine only ever sees materialized collections.
type Input struct {
	// Min and Max bound the dock number range, inclusive. Min must not
	// exceed Max.
	Min int
	Max int

	// FirstPriority and SecondPriority list the docks explicitly assigned
	// to the first and second class. Duplicates are tolerated; a dock
	// present in both lists is classified first (first-priority wins).
	FirstPriority  []int
	SecondPriority []int

	// ExceptionGroups are the raw exception inputs in argument order.
	// Each inner list is one requested bundle; members may repeat and may
	// fall outside [Min, Max] — the resolver cleans both up with warnings.
	ExceptionGroups [][]int

	// PerPage is the base group capacity, applied to third-priority
	// (general) groups and used as the default for the other classes.
	// Must be at least 1.
	PerPage int

	// FirstPerPage and SecondPerPage override PerPage for groups seeded by
	// a first- or second-priority dock. Zero means "not set, use PerPage".
	// Explicit zero values are rejected at the flag layer before the
	// engine runs.
	FirstPerPage  int
	SecondPerPage int

	// StrictFirst forbids a group seeded by a first-priority dock from
	// absorbing docks of any other class. StrictSecond is the analogous
	// flag for second-priority groups.
	StrictFirst  bool
	StrictSecond bool
}

// Validate checks the fatal preconditions: a usable base capacity,
// non-negative overrides and bounds, and an ordered range. The engine is
// never run on input that fails validation.
func (in Input) Validate() error {
	if in.PerPage < 1 {
		return fmt.Errorf("number of docks per group must be 1 or greater")
	}
	if in.FirstPerPage < 0 {
		return fmt.Errorf("number of docks per group for 1st priority must be 1 or greater")
	}
	if in.SecondPerPage < 0 {
		return fmt.Errorf("number of docks per group for 2nd priority must be 1 or greater")
	}
	if in.Min < 0 {
		return fmt.Errorf("minimum dock number (%d) must not be negative", in.Min)
	}
	if in.Min > in.Max {
		return fmt.Errorf("minimum dock number (%d) cannot be greater than maximum dock number (%d)", in.Min, in.Max)
	}
	return nil
}

// Result is the complete output of one partition run. Everything the
// presentation layer needs is here: the ordered groups, the priority map
// for marker rendering, the exception data for the separate exception
// listing, the resolved capacities, and any warnings collected along
// the way.
type Result struct {
	// Groups is the ordered list of output groups. Their members cover
	// {Min, ..., Max} exactly once.
	Groups []model.Group

	// Priorities maps each non-exception dock with an explicit assignment
	// to its class. Docks absent from the map are third priority;
	// exception docks never appear.
	Priorities map[int]model.Priority

	// ExceptionDocks is the flat set of all docks claimed by a resolved
	// exception group.
	ExceptionDocks map[int]bool

	// ExceptionGroups are the resolved, pairwise-disjoint exception
	// groups in canonical order (ascending by smallest member).
	ExceptionGroups []model.Group

	// FirstPerPage, SecondPerPage, and GeneralPerPage are the capacities
	// actually applied, after defaulting the unset overrides to PerPage.
	FirstPerPage   int
	SecondPerPage  int
	GeneralPerPage int

	// Warnings lists the recoverable input anomalies encountered, in the
	// order they were detected. The caller surfaces them on its
	// diagnostic stream; they never abort processing.
	Warnings []string
}
