/*
PURPOSE:
  Defines the configuration structure and loading logic for console-kit.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the logger sink, timestamps, spinner and stamp defaults.

  Implementation-discovered:
  - Needs to support YAML and TOML parsing (chosen by file extension).
  - Values are validated after decoding so a typo in "output" fails early.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli
  - Dependencies: gopkg.in/yaml.v3, github.com/BurntSushi/toml,
    github.com/go-playground/validator/v10

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default files fall back to defaults silently.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml and toml.
  - Defaults mirror the library defaults.

USAGE:
  cfg, err := config.Load("console-kit.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/daryltucker/console-kit/box"
	"github.com/daryltucker/console-kit/level"
	"github.com/daryltucker/console-kit/spinner"
)

// Config represents the full configuration for console-kit.
type Config struct {
	// Output is the logger sink: "log" or "stdout".
	Output   string `yaml:"output" toml:"output" validate:"oneof=log stdout"`
	Datetime bool   `yaml:"datetime" toml:"datetime"`
	// Color is "auto", "always" or "never".
	Color string `yaml:"color" toml:"color" validate:"oneof=auto always never"`
	// Record is an optional .jsonl or .csv file receiving every emitted line.
	Record  string        `yaml:"record" toml:"record" validate:"omitempty,endswith=.jsonl|endswith=.json|endswith=.csv"`
	Spinner SpinnerConfig `yaml:"spinner" toml:"spinner"`
	Stamp   StampConfig   `yaml:"stamp" toml:"stamp"`
}

// SpinnerConfig holds spinner defaults.
type SpinnerConfig struct {
	Frames   []string `yaml:"frames" toml:"frames" validate:"omitempty,dive,required"`
	CharSet  int      `yaml:"charset" toml:"charset" validate:"min=0"`
	Interval Duration `yaml:"interval" toml:"interval" validate:"min=0"`
	Level    string   `yaml:"level" toml:"level" validate:"level"`
	Prefix   string   `yaml:"prefix" toml:"prefix"`
	Suffix   string   `yaml:"suffix" toml:"suffix"`
}

// StampConfig holds stamp defaults.
type StampConfig struct {
	Box         string `yaml:"box" toml:"box" validate:"boxstyle"`
	Instruction bool   `yaml:"instruction" toml:"instruction"`
}

// Duration accepts "250ms"-style strings in both YAML and TOML.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: "log",
		Color:  "auto",
		Spinner: SpinnerConfig{
			Interval: Duration(spinner.DefaultInterval),
			Level:    "wait",
		},
		Stamp: StampConfig{
			Box: box.Round,
		},
	}
}

// DefaultFiles are searched in order when no path is given.
var DefaultFiles = []string{"console-kit.yaml", "console-kit.yml", "console-kit.toml"}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		_, err := level.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("boxstyle", func(fl validator.FieldLevel) bool {
		_, err := box.Lookup(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks cfg against its field constraints.
func Validate(cfg *Config) error {
	return validate.Struct(cfg)
}
