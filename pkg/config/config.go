// Package config loads and validates the settings of a search run. Values come
// from an optional YAML file and are then overridden by command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/ramsey-tabu/pkg/logging"
	"github.com/dd0wney/ramsey-tabu/pkg/ramsey"
	"github.com/dd0wney/ramsey-tabu/pkg/runner"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is one search run.
type Config struct {
	Vertices  int    `yaml:"vertices" validate:"required,min=1"`
	Structure string `yaml:"structure" validate:"required"`
	Sizes     []int  `yaml:"sizes" validate:"required,min=1,dive,min=4"`

	// Workers is the number of independent searches; Concurrency caps how many
	// run at once (0 means all of them).
	Workers     int `yaml:"workers" validate:"min=1,max=4096"`
	Concurrency int `yaml:"concurrency" validate:"min=0"`

	// Seed is optional; a missing seed is drawn at random and logged.
	Seed *uint64 `yaml:"seed"`

	MaxSteps    int64 `yaml:"max_steps" validate:"min=0"`
	MaxAttempts int   `yaml:"max_attempts" validate:"min=0"`

	Quiet     bool   `yaml:"quiet"`
	Save      bool   `yaml:"save"`
	OutputDir string `yaml:"output_dir"`

	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// Default returns the settings used when neither file nor flags say otherwise.
func Default() *Config {
	return &Config{
		Workers:   1,
		OutputDir: ".",
		LogLevel:  "info",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected and an
// empty file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// Validate checks field constraints, then the structure name and its minimum
// size.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, formatValidationError(err))
	}

	cv := NewConfigValidator("Config")
	cv.Custom("Structure", func() error {
		kind, err := ramsey.ParseKind(c.Structure)
		if err != nil {
			return err
		}
		for i, s := range c.Sizes {
			if s < kind.MinSize() {
				return fmt.Errorf("sizes[%d] = %d is below the %s minimum of %d", i, s, kind, kind.MinSize())
			}
		}
		return nil
	})
	cv.When(c.Save, func(cv *ConfigValidator) {
		cv.Required("OutputDir", c.OutputDir)
	})
	cv.When(c.Concurrency > 0, func(cv *ConfigValidator) {
		cv.MaxInt("Concurrency", c.Concurrency, c.Workers)
	})
	if err := cv.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Kind returns the parsed forbidden structure.
func (c *Config) Kind() (ramsey.Kind, error) {
	return ramsey.ParseKind(c.Structure)
}

// Problem returns what to search for.
func (c *Config) Problem() (runner.Problem, error) {
	kind, err := c.Kind()
	if err != nil {
		return runner.Problem{}, err
	}
	return runner.Problem{
		Vertices:  c.Vertices,
		Structure: kind,
		Sizes:     append([]int(nil), c.Sizes...),
	}, nil
}

// Level returns the configured log level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(DefaultOr(c.LogLevel, "info"))
}

// Parallel reports whether more than one search is requested.
func (c *Config) Parallel() bool {
	return c.Workers > 1
}
