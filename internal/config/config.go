// Package config provides configuration for chess-arbiter.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-arbiter/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // errors only
	Summary    = 1 // one line per command
	Commentary = 2 // running commentary, including the store's own log
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of goroutines used by verify. 0 means one per CPU.
	Workers int

	Storage *StorageConfig
	Output  *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Storage:    NewStorageConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w", c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Storage == nil || c.Output == nil {
		return fmt.Errorf("missing storage or output settings: %w", errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("missing output stream: %w", errors.ErrInvalidConfig)
	}
	return c.Storage.Validate()
}

// Logf writes a log line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
