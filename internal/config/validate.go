package config

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Allowed ranges, taken from the interactive controls of the showcase.
const (
	MinDijkstraInterval = 200 * time.Millisecond
	MaxDijkstraInterval = 2 * time.Second
	MinSortingInterval  = 10 * time.Millisecond
	MaxSortingInterval  = 200 * time.Millisecond
	MinNeuralInterval   = 10 * time.Millisecond
	MaxNeuralInterval   = 2 * time.Second

	MinSortSize = 5
	MaxSortSize = 50

	MinHiddenUnits  = 2
	MaxHiddenUnits  = 8
	MinLearningRate = 0.01
	MaxLearningRate = 0.5

	MaxGrid = 200
)

var (
	validAlgorithms  = []string{"bubble", "merge", "both"}
	validGranularity = []string{"mutation", "comparison"}
	validLogLevels   = []string{"debug", "info", "warn", "error"}
	validLogFormats  = []string{"json", "console"}
)

// Validate checks every field against its allowed range. The first failure
// is returned, wrapping ErrInvalid.
func (c *Config) Validate() error {
	// 1) Shortest path.
	if c.Dijkstra.Start == "" || c.Dijkstra.End == "" {
		return errors.Wrap(ErrInvalid, "dijkstra.start and dijkstra.end are required")
	}
	if err := checkInterval("dijkstra.interval", c.Dijkstra.Interval, MinDijkstraInterval, MaxDijkstraInterval); err != nil {
		return err
	}

	// 2) Sorting.
	if c.Sorting.Size < MinSortSize || c.Sorting.Size > MaxSortSize {
		return errors.Wrapf(ErrInvalid, "sorting.size %d not in [%d, %d]", c.Sorting.Size, MinSortSize, MaxSortSize)
	}
	if err := checkInterval("sorting.interval", c.Sorting.Interval, MinSortingInterval, MaxSortingInterval); err != nil {
		return err
	}
	if err := checkOneOf("sorting.algorithm", c.Sorting.Algorithm, validAlgorithms); err != nil {
		return err
	}
	if err := checkOneOf("sorting.granularity", c.Sorting.Granularity, validGranularity); err != nil {
		return err
	}
	if c.Sorting.MinValue > c.Sorting.MaxValue {
		return errors.Wrapf(ErrInvalid, "sorting.min_value %d exceeds max_value %d", c.Sorting.MinValue, c.Sorting.MaxValue)
	}

	// 3) Trainer.
	if c.Neural.HiddenUnits < MinHiddenUnits || c.Neural.HiddenUnits > MaxHiddenUnits {
		return errors.Wrapf(ErrInvalid, "neural.hidden_units %d not in [%d, %d]", c.Neural.HiddenUnits, MinHiddenUnits, MaxHiddenUnits)
	}
	lr := c.Neural.LearningRate
	if math.IsNaN(lr) || lr < MinLearningRate || lr > MaxLearningRate {
		return errors.Wrapf(ErrInvalid, "neural.learning_rate %v not in [%v, %v]", lr, MinLearningRate, MaxLearningRate)
	}
	if err := checkInterval("neural.interval", c.Neural.Interval, MinNeuralInterval, MaxNeuralInterval); err != nil {
		return err
	}
	if c.Neural.Epochs < 1 {
		return errors.Wrapf(ErrInvalid, "neural.epochs %d must be positive", c.Neural.Epochs)
	}
	if c.Neural.GridCols < 1 || c.Neural.GridCols > MaxGrid || c.Neural.GridRows < 1 || c.Neural.GridRows > MaxGrid {
		return errors.Wrapf(ErrInvalid, "neural grid %dx%d not in [1, %d]", c.Neural.GridCols, c.Neural.GridRows, MaxGrid)
	}

	// 4) Logging.
	if err := checkOneOf("logging.level", c.Logging.Level, validLogLevels); err != nil {
		return err
	}
	return checkOneOf("logging.format", c.Logging.Format, validLogFormats)
}

func checkInterval(field, value string, lo, hi time.Duration) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return errors.Wrapf(ErrInvalid, "%s %q: %v", field, value, err)
	}
	if d < lo || d > hi {
		return errors.Wrapf(ErrInvalid, "%s %v not in [%v, %v]", field, d, lo, hi)
	}
	return nil
}

func checkOneOf(field, value string, valid []string) error {
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return errors.Wrapf(ErrInvalid, "%s %q (valid: %v)", field, value, valid)
}
