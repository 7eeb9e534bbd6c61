// Package cli — init.go implements the "dock-sorter init" command.
//
// init writes a starter config file with the built-in defaults so users
// can persist their usual range and paging settings instead of repeating
// them as flags on every run.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/createsejin/dock-sorter/internal/config"
	"github.com/createsejin/dock-sorter/internal/model"
)

// initFlags holds the flag values for the init command.
type initFlags struct {
	// output is the path of the config file to create.
	output string

	// force allows overwriting an existing file.
	force bool
}

// NewInitCommand creates the "init" cobra command.
func NewInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a config file populated with the built-in defaults.

The file can then be passed to plan via --config, or its values
overridden per-key with DOCK_-prefixed environment variables.

Examples:
  dock-sorter init
  dock-sorter init --output hall-b.yaml --force`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "dock-sorter.yaml",
		"Path of the config file to create")
	cmd.Flags().BoolVar(&flags.force, "force", false,
		"Overwrite the file if it already exists")

	return cmd
}

// runInit is the main logic function for the init command.
func runInit(flags *initFlags) error {
	if err := writeDefaultConfig(flags.output, flags.force); err != nil {
		return err
	}

	if IsJSONOutput() {
		fmt.Printf("{\n  \"created\": %q\n}\n", flags.output)
		return nil
	}
	fmt.Printf("Created %s\n", flags.output)
	return nil
}

// writeDefaultConfig marshals the built-in defaults to YAML and writes
// them to path. Unless force is set, an existing file is an error rather
// than silently overwritten.
func writeDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return model.NewCLIError(model.ExitGeneralError,
				fmt.Sprintf("config file %s already exists (use --force to overwrite)", path))
		}
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "encoding default config", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("writing config file %s", path), err)
	}
	return nil
}
