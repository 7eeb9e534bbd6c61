package model

import "fmt"

// Priority is the importance class assigned to a dock number.
// The ordering is total: First < Second < Third, where a smaller value
// means "more important" and is emitted earlier. Comparisons go through
// MoreImportantThan rather than raw integer comparison so call sites
// read as statements about importance.
type Priority int

const (
	// PriorityFirst is the most important class. First-priority docks are
	// rendered with a trailing "@" marker when markers are enabled.
	PriorityFirst Priority = iota + 1

	// PrioritySecond is the middle class, rendered with a trailing "*".
	PrioritySecond

	// PriorityThird is the default class for any dock with no explicit
	// assignment. Third-priority docks carry no marker.
	PriorityThird
)

// String returns the human-readable class name.
// This satisfies fmt.Stringer for CLI and log output.
func (p Priority) String() string {
	switch p {
	case PriorityFirst:
		return "first"
	case PrioritySecond:
		return "second"
	case PriorityThird:
		return "third"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// IsValid checks whether the Priority is one of the three defined classes.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityFirst, PrioritySecond, PriorityThird:
		return true
	default:
		return false
	}
}

// MoreImportantThan reports whether p outranks other. A more important
// dock never joins a group seeded by a less important one — it always
// starts a fresh group.
func (p Priority) MoreImportantThan(other Priority) bool {
	return p < other
}

// Marker returns the symbol appended to a dock number of this class when
// marker output is enabled: "@" for first, "*" for second, "" for third.
// Exception docks are never marked; that filtering happens in the renderer.
func (p Priority) Marker() string {
	switch p {
	case PriorityFirst:
		return "@"
	case PrioritySecond:
		return "*"
	default:
		return ""
	}
}
