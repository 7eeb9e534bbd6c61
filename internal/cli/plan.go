// Package cli — plan.go implements the "dock-sorter plan" command.
//
// plan is the main operation: it merges config file defaults with the
// explicit flags, expands the dock range syntax, runs the partition
// engine, surfaces its warnings on stderr, and prints the resulting
// groups as text or JSON.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/createsejin/dock-sorter/internal/config"
	"github.com/createsejin/dock-sorter/internal/logging"
	"github.com/createsejin/dock-sorter/internal/model"
	"github.com/createsejin/dock-sorter/internal/partition"
	"github.com/createsejin/dock-sorter/internal/rangeparse"
	"github.com/createsejin/dock-sorter/internal/render"
)

// planFlags holds the flag values for the plan command.
// These are bound to cobra flags in NewPlanCommand.
type planFlags struct {
	first      []string
	second     []string
	exceptions []string

	perPage int
	fpp     int
	spp     int

	min int
	max int

	strictFirst  bool
	strictSecond bool
	mark         bool
}

// NewPlanCommand creates the "plan" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewPlanCommand() *cobra.Command {
	flags := &planFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the dock label output order",
		Long: `Compute the printable group sequence for a dock number range.

Priority and exception flags accept single numbers or inclusive ranges
("5-9"); repeat a flag to supply more values. Each --exceptions occurrence
defines one group whose docks are always printed together.

Examples:
  dock-sorter plan -p 4
  dock-sorter plan -p 4 -f 65-66 -f 71 -s 56 --fpp 2 --mark
  dock-sorter plan -p 3 -e 60-61 -e 74-76 --strict-first
  dock-sorter plan --config dock-sorter.yaml --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.first, "first", "f", nil,
		"First priority docks; single numbers or ranges (e.g. 65-66)")
	cmd.Flags().StringArrayVarP(&flags.second, "second", "s", nil,
		"Second priority docks; single numbers or ranges (e.g. 10-12)")
	cmd.Flags().StringArrayVarP(&flags.exceptions, "exceptions", "e", nil,
		"Exception dock group, printed together regardless of paging; repeat once per group")
	cmd.Flags().IntVarP(&flags.perPage, "per-page", "p", 0,
		"Number of docks to print per group")
	cmd.Flags().IntVar(&flags.fpp, "fpp", 0,
		"Docks per group for 1st priority docks (defaults to --per-page)")
	cmd.Flags().IntVar(&flags.spp, "spp", 0,
		"Docks per group for 2nd priority docks (defaults to --per-page)")
	cmd.Flags().IntVar(&flags.min, "min", 0, "Minimum dock number to process")
	cmd.Flags().IntVar(&flags.max, "max", 0, "Maximum dock number to process")
	cmd.Flags().BoolVarP(&flags.strictFirst, "strict-first", "F", false,
		"Group 1st priority docks strictly with other 1st priority docks only")
	cmd.Flags().BoolVarP(&flags.strictSecond, "strict-second", "S", false,
		"Group 2nd priority docks strictly with other 2nd priority docks only")
	cmd.Flags().BoolVarP(&flags.mark, "mark", "m", false,
		"Print markers ('@' for 1st, '*' for 2nd) next to priority dock numbers")

	return cmd
}

// runPlan is the main logic function for the plan command.
func runPlan(cmd *cobra.Command, flags *planFlags) error {
	log := logging.New(verbose)

	cfg, err := config.Load(configPath)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}

	in, markers, err := flags.resolve(*cfg, cmd.Flags().Changed)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid input", err)
	}

	log.Debug().
		Int("min", in.Min).
		Int("max", in.Max).
		Int("per_page", in.PerPage).
		Msg("partitioning dock range")

	res, err := partition.Partition(in)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid input", err)
	}

	// Warnings precede normal output on the diagnostic stream and never
	// abort processing.
	for _, warning := range res.Warnings {
		log.Warn().Msg(warning)
	}
	log.Debug().
		Int("groups", len(res.Groups)).
		Int("exception_groups", len(res.ExceptionGroups)).
		Msg("partition complete")

	if IsJSONOutput() {
		return render.JSON(os.Stdout, in, res)
	}
	render.Text(os.Stdout, in, res, markers)
	return nil
}

// resolve merges config file values with explicit flags and expands the
// dock range syntax into the engine input. Flags win where set (changed
// reports whether a flag was given on the command line); config supplies
// the rest. The second return value is the resolved markers setting.
func (f *planFlags) resolve(cfg config.Config, changed func(name string) bool) (partition.Input, bool, error) {
	in := partition.Input{
		Min:           cfg.Range.Min,
		Max:           cfg.Range.Max,
		PerPage:       cfg.Paging.PerPage,
		FirstPerPage:  cfg.Paging.FirstPerPage,
		SecondPerPage: cfg.Paging.SecondPerPage,
		StrictFirst:   cfg.Strict.First,
		StrictSecond:  cfg.Strict.Second,
	}
	markers := cfg.Output.Markers

	if changed("min") {
		in.Min = f.min
	}
	if changed("max") {
		in.Max = f.max
	}
	if changed("per-page") {
		in.PerPage = f.perPage
	}
	if changed("fpp") {
		// Zero is a valid default sentinel inside the engine, so an
		// explicit zero must be rejected here.
		if f.fpp == 0 {
			return in, false, fmt.Errorf("number of docks for 1st priority (--fpp) must be 1 or greater")
		}
		in.FirstPerPage = f.fpp
	}
	if changed("spp") {
		if f.spp == 0 {
			return in, false, fmt.Errorf("number of docks for 2nd priority (--spp) must be 1 or greater")
		}
		in.SecondPerPage = f.spp
	}
	if changed("strict-first") {
		in.StrictFirst = f.strictFirst
	}
	if changed("strict-second") {
		in.StrictSecond = f.strictSecond
	}
	if changed("mark") {
		markers = f.mark
	}

	if in.PerPage == 0 {
		return in, false, fmt.Errorf("number of docks per group is required: set --per-page or paging.per_page in the config")
	}

	firstGroups, err := rangeparse.ParseAll(f.first)
	if err != nil {
		return in, false, fmt.Errorf("parsing --first: %w", err)
	}
	in.FirstPriority = rangeparse.Flatten(firstGroups)

	secondGroups, err := rangeparse.ParseAll(f.second)
	if err != nil {
		return in, false, fmt.Errorf("parsing --second: %w", err)
	}
	in.SecondPriority = rangeparse.Flatten(secondGroups)

	in.ExceptionGroups, err = rangeparse.ParseAll(f.exceptions)
	if err != nil {
		return in, false, fmt.Errorf("parsing --exceptions: %w", err)
	}

	if err := in.Validate(); err != nil {
		return in, false, err
	}
	return in, markers, nil
}
