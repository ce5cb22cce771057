// SPDX-License-Identifier: MIT

package vectordata

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevelOff disables engine logging.
const logLevelOff = "off"

// Config is the environment-driven form of Options.
// With prefix "VECTORDATA" the variables are VECTORDATA_PARALLEL_THRESHOLD,
// VECTORDATA_MAX_WORKERS and VECTORDATA_LOG_LEVEL.
type Config struct {
	ParallelThreshold int    `envconfig:"PARALLEL_THRESHOLD" default:"32768"` // 0 disables fan-out
	MaxWorkers        int    `envconfig:"MAX_WORKERS" default:"0"`            // 0 means GOMAXPROCS
	LogLevel          string `envconfig:"LOG_LEVEL" default:"off"`            // off, debug, info, warn, error
}

// LoadConfig reads Config from the environment under prefix.
func LoadConfig(prefix string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("LoadConfig(%s): %v: %w", prefix, err, ErrInvalidConfig)
	}

	return cfg, nil
}

// Options validates the Config and converts it into engine options.
// Returns ErrInvalidConfig for negative counts or an unknown log level.
func (c Config) Options() ([]Option, error) {
	if c.ParallelThreshold < 0 {
		return nil, fmt.Errorf("Config.Options: parallel threshold %d: %w", c.ParallelThreshold, ErrInvalidConfig)
	}
	if c.MaxWorkers < 0 {
		return nil, fmt.Errorf("Config.Options: max workers %d: %w", c.MaxWorkers, ErrInvalidConfig)
	}
	logger, err := NewLogger(c.LogLevel)
	if err != nil {
		return nil, err
	}

	return []Option{
		WithParallelThreshold(c.ParallelThreshold),
		WithMaxWorkers(c.MaxWorkers),
		WithLogger(logger),
	}, nil
}

// NewLogger builds a JSON zap logger at level; "" and "off" give a no-op logger.
func NewLogger(level string) (*zap.Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == logLevelOff {
		return zap.NewNop(), nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("NewLogger(%q): %v: %w", level, err, ErrInvalidConfig)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("NewLogger(%q): %v: %w", level, err, ErrInvalidConfig)
	}

	return logger, nil
}
