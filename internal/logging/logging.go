// Package logging builds the zap logger used by the CLI and the playback
// driver from the logging section of the configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/stepviz/internal/config"
)

// New builds a production zap logger. verbose forces debug level. Output goes
// to stderr unless paths are given (zap sink URLs or file paths), keeping
// stdout free for frames.
func New(cfg config.LoggingConfig, verbose bool, paths ...string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "", "json":
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	// Per-tick debug lines must not be sampled away.
	zc.Sampling = nil
	zc.OutputPaths = []string{"stderr"}
	if len(paths) > 0 {
		zc.OutputPaths = paths
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
