// Package config loads the optional dock-sorter config file, which
// supplies defaults for the range, paging, strict, and output settings.
// Explicit command-line flags always win over config values, and config
// values win over the built-in defaults.
//
// Supported formats are YAML, JSON, and JSONC (JSON with comments, which
// is stripped with github.com/tidwall/jsonc before parsing). Values can
// additionally be overridden through DOCK_-prefixed environment
// variables, e.g. DOCK_RANGE__MIN=10 sets range.min.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"
)

// Config is the full configuration tree. Zero values mean "not set":
// the CLI treats a zero PerPage as "the -p flag is required".
type Config struct {
	Range  Range  `koanf:"range" yaml:"range"`
	Paging Paging `koanf:"paging" yaml:"paging"`
	Strict Strict `koanf:"strict" yaml:"strict"`
	Output Output `koanf:"output" yaml:"output"`
}

// Range bounds the dock numbers to process, inclusive.
type Range struct {
	Min int `koanf:"min" yaml:"min"`
	Max int `koanf:"max" yaml:"max"`
}

// Paging holds the per-class group capacities. FirstPerPage and
// SecondPerPage default to PerPage when left at zero.
type Paging struct {
	PerPage       int `koanf:"per_page" yaml:"per_page"`
	FirstPerPage  int `koanf:"first_per_page" yaml:"first_per_page"`
	SecondPerPage int `koanf:"second_per_page" yaml:"second_per_page"`
}

// Strict mirrors the --strict-first/--strict-second flags.
type Strict struct {
	First  bool `koanf:"first" yaml:"first"`
	Second bool `koanf:"second" yaml:"second"`
}

// Output holds presentation defaults.
type Output struct {
	// Markers renders "@" after first-priority docks and "*" after
	// second-priority docks in the group listing.
	Markers bool `koanf:"markers" yaml:"markers"`
}

// Default returns the built-in configuration. The 51-78 range matches the
// dock numbering of the warehouse this tool was written for; everything
// else starts unset.
func Default() Config {
	return Config{
		Range: Range{Min: 51, Max: 78},
	}
}

// Load reads the config file at path, if any, applies environment
// overrides, and returns the merged configuration on top of Default().
// An empty path skips the file and applies only env overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// DOCK_-prefixed environment variables override file values.
	// A double underscore separates nesting levels: DOCK_PAGING__PER_PAGE.
	if err := k.Load(env.Provider("DOCK_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dock_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile loads one config file into k, choosing the parser by extension.
func loadFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
	case ".json":
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
	case ".jsonc":
		// jsonc strips comments and trailing commas; the result is plain
		// JSON that the standard parser accepts.
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		if err := k.Load(rawbytes.Provider(jsonc.ToJSON(raw)), kjson.Parser()); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	return nil
}

// Validate rejects configurations the engine could never accept. These
// are the same fatal preconditions the partition input enforces, checked
// early so the error points at the config file rather than the engine.
func (c *Config) Validate() error {
	if c.Paging.PerPage < 0 {
		return fmt.Errorf("paging.per_page must not be negative")
	}
	if c.Paging.FirstPerPage < 0 {
		return fmt.Errorf("paging.first_per_page must not be negative")
	}
	if c.Paging.SecondPerPage < 0 {
		return fmt.Errorf("paging.second_per_page must not be negative")
	}
	if c.Range.Min < 0 {
		return fmt.Errorf("range.min must not be negative")
	}
	if c.Range.Min > c.Range.Max {
		return fmt.Errorf("range.min (%d) cannot be greater than range.max (%d)", c.Range.Min, c.Range.Max)
	}
	return nil
}
