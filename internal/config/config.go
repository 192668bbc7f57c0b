// Package config provides configuration for the chess engine binaries.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=search summaries, 2=running commentary

	// Grouped settings
	Search *SearchConfig
	Server *ServerConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Server:     NewServerConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// SearchLog returns the writer search progress goes to: LogFile when
// Verbosity is at least level, io.Discard otherwise.
func (c *Config) SearchLog(level int) io.Writer {
	if c.Verbosity < level || c.LogFile == nil {
		return io.Discard
	}
	return c.LogFile
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	fmt.Fprintf(c.SearchLog(level), format, args...)
}

// Validate checks every configuration section.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
