// Package config loads the stepviz YAML configuration: defaults, then the
// file, then STEPVIZ_* environment overrides, then validation.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Environment variables consulted by Load.
const (
	EnvSeed     = "STEPVIZ_SEED"
	EnvLogLevel = "STEPVIZ_LOG_LEVEL"
)

// Config holds all stepviz configuration.
type Config struct {
	// Seed drives every random source; 0 selects the fixed default seed.
	Seed int64 `yaml:"seed"`

	Dijkstra DijkstraConfig `yaml:"dijkstra"`
	Sorting  SortingConfig  `yaml:"sorting"`
	Neural   NeuralConfig   `yaml:"neural"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DijkstraConfig configures the shortest-path view.
type DijkstraConfig struct {
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Interval string `yaml:"interval"` // 200ms..2s
	Graph    string `yaml:"graph"`    // DSL file; empty selects the demo graph
}

// SortingConfig configures the sorting view.
type SortingConfig struct {
	Size        int    `yaml:"size"`        // 5..50
	Interval    string `yaml:"interval"`    // 10ms..200ms
	Algorithm   string `yaml:"algorithm"`   // bubble, merge, both
	Granularity string `yaml:"granularity"` // mutation, comparison
	MinValue    int    `yaml:"min_value"`
	MaxValue    int    `yaml:"max_value"`
}

// NeuralConfig configures the trainer view.
type NeuralConfig struct {
	HiddenUnits  int     `yaml:"hidden_units"`  // 2..8
	LearningRate float64 `yaml:"learning_rate"` // 0.01..0.5
	Interval     string  `yaml:"interval"`
	Epochs       int     `yaml:"epochs"`
	Points       string  `yaml:"points"` // YAML points file; empty selects the demo points
	GridCols     int     `yaml:"grid_cols"`
	GridRows     int     `yaml:"grid_rows"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the showcase defaults.
func DefaultConfig() *Config {
	return &Config{
		Dijkstra: DijkstraConfig{
			Start:    "A",
			End:      "F",
			Interval: "1s",
		},
		Sorting: SortingConfig{
			Size:        20,
			Interval:    "50ms",
			Algorithm:   "both",
			Granularity: "mutation",
			MinValue:    1,
			MaxValue:    100,
		},
		Neural: NeuralConfig{
			HiddenUnits:  4,
			LearningRate: 0.1,
			Interval:     "100ms",
			Epochs:       500,
			GridCols:     40,
			GridRows:     20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied before validation.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "failed to parse config %s", path)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s=%q is not an integer", EnvSeed, v)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// DijkstraInterval returns the parsed shortest-path tick interval.
func (c *Config) DijkstraInterval() time.Duration { return mustDuration(c.Dijkstra.Interval) }

// SortingInterval returns the parsed sorting tick interval.
func (c *Config) SortingInterval() time.Duration { return mustDuration(c.Sorting.Interval) }

// NeuralInterval returns the parsed training tick interval.
func (c *Config) NeuralInterval() time.Duration { return mustDuration(c.Neural.Interval) }

// mustDuration parses an interval already checked by Validate; garbage yields 0.
func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
