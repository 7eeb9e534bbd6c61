// Package rangeparse parses the dock range syntax accepted by the CLI
// flags: a value is either a single number ("7") or an inclusive range
// ("5-9") that expands to every number in between. Each flag value parses
// to its own list so exception groups keep their per-argument identity.
package rangeparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts one flag value into the dock numbers it denotes.
// "7" yields [7]; "5-9" yields [5 6 7 8 9]. The range start must not
// exceed the end, and both sides must be non-negative integers.
func Parse(s string) ([]int, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "-") {
		parts := strings.SplitN(s, "-", 2)
		start, errStart := strconv.Atoi(strings.TrimSpace(parts[0]))
		end, errEnd := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errStart != nil || errEnd != nil || start < 0 || end < 0 {
			return nil, fmt.Errorf("invalid range format %q: both parts must be numbers", s)
		}
		if start > end {
			return nil, fmt.Errorf("invalid range: start (%d) must be less than or equal to end (%d) in %q", start, end, s)
		}
		docks := make([]int, 0, end-start+1)
		for d := start; d <= end; d++ {
			docks = append(docks, d)
		}
		return docks, nil
	}

	dock, err := strconv.Atoi(s)
	if err != nil || dock < 0 {
		return nil, fmt.Errorf("invalid number or range format %q", s)
	}
	return []int{dock}, nil
}

// ParseAll parses every flag value, preserving argument order. Each input
// value produces one list; callers that treat each argument as a unit
// (exception groups) depend on that shape.
func ParseAll(values []string) ([][]int, error) {
	groups := make([][]int, 0, len(values))
	for _, v := range values {
		docks, err := Parse(v)
		if err != nil {
			return nil, err
		}
		groups = append(groups, docks)
	}
	return groups, nil
}

// Flatten merges the per-argument lists into a single flat list. Used for
// the priority inputs, where only membership matters.
func Flatten(groups [][]int) []int {
	var flat []int
	for _, g := range groups {
		flat = append(flat, g...)
	}
	return flat
}
