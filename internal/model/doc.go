// Package model defines the domain types shared across the dock-sorter CLI.
//
// This package contains pure data structures with no external dependencies:
// the Priority ordering, the Group output unit, and the exit-code / CLIError
// machinery that maps domain failures to process exit codes. All values are
// transient — dock-sorter computes everything fresh per invocation and
// persists nothing.
package model
