// Package render formats partition results for the terminal.
//
// Two formats exist: the human-readable text layout (header lines,
// exception group listing, then one comma-separated line per group, with
// optional @ and * priority markers) and a JSON document for machine
// consumption. Warnings are not rendered here — the CLI surfaces them on
// its diagnostic stream before the output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/createsejin/dock-sorter/internal/model"
	"github.com/createsejin/dock-sorter/internal/partition"
)

// Text writes the human-readable result layout to w. When markers is set,
// first-priority docks get a trailing "@" and second-priority docks a
// trailing "*"; exception docks are always printed bare.
func Text(w io.Writer, in partition.Input, res *partition.Result, markers bool) {
	fmt.Fprintf(w, "Processing dock range: %d - %d\n", in.Min, in.Max)
	fmt.Fprintf(w, "Docks per group (1st priority): %d\n", res.FirstPerPage)
	fmt.Fprintf(w, "Docks per group (2nd priority): %d\n", res.SecondPerPage)
	fmt.Fprintf(w, "Docks per group (3rd priority/general): %d\n", res.GeneralPerPage)

	if in.StrictFirst {
		fmt.Fprintln(w, "Strict mode applied for 1st priority groups.")
	}
	if in.StrictSecond {
		fmt.Fprintln(w, "Strict mode applied for 2nd priority groups.")
	}

	if len(res.ExceptionGroups) > 0 {
		fmt.Fprintln(w, "Exception groups (printed together, in order of their first dock):")
		for _, g := range res.ExceptionGroups {
			fmt.Fprintf(w, "  - [%s]\n", g.String())
		}
	}

	fmt.Fprintln(w, "--- Output Order (1st: @, 2nd: *) ---")

	for _, g := range res.Groups {
		parts := make([]string, len(g))
		for i, dock := range g {
			parts[i] = formatDock(dock, res, markers)
		}
		fmt.Fprintln(w, strings.Join(parts, ", "))
	}
}

// formatDock renders one dock number, appending the priority marker when
// enabled. Exception docks never carry a marker even if a stale priority
// entry existed — exception membership overrides priority entirely.
func formatDock(dock int, res *partition.Result, markers bool) string {
	s := strconv.Itoa(dock)
	if !markers || res.ExceptionDocks[dock] {
		return s
	}
	if p, ok := res.Priorities[dock]; ok {
		return s + p.Marker()
	}
	return s
}

// jsonResult is the wire shape of the JSON output. Group membership and
// ordering are preserved exactly; the priority map keys marshal as
// strings per JSON object rules.
type jsonResult struct {
	Range struct {
		Min int `json:"min"`
		Max int `json:"max"`
	} `json:"range"`
	PerPage struct {
		First   int `json:"first"`
		Second  int `json:"second"`
		General int `json:"general"`
	} `json:"perPage"`
	Strict struct {
		First  bool `json:"first"`
		Second bool `json:"second"`
	} `json:"strict"`
	ExceptionGroups []model.Group  `json:"exceptionGroups"`
	Groups          []model.Group  `json:"groups"`
	PriorityNames   map[int]string `json:"priorities"`
	Warnings        []string       `json:"warnings"`
}

// JSON writes the result as an indented JSON document to w.
func JSON(w io.Writer, in partition.Input, res *partition.Result) error {
	out := jsonResult{
		ExceptionGroups: res.ExceptionGroups,
		Groups:          res.Groups,
		PriorityNames:   make(map[int]string, len(res.Priorities)),
		Warnings:        res.Warnings,
	}
	out.Range.Min = in.Min
	out.Range.Max = in.Max
	out.PerPage.First = res.FirstPerPage
	out.PerPage.Second = res.SecondPerPage
	out.PerPage.General = res.GeneralPerPage
	out.Strict.First = in.StrictFirst
	out.Strict.Second = in.StrictSecond

	for dock, p := range res.Priorities {
		out.PriorityNames[dock] = p.String()
	}
	if out.ExceptionGroups == nil {
		out.ExceptionGroups = []model.Group{}
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
