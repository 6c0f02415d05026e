// Package config provides configuration loading and validation for the
// linsys command. Configuration is layered: built-in defaults -> optional
// YAML file -> LINSYS_ environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Config holds all configuration for the linsys command.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Report ReportConfig `koanf:"report"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ReportConfig controls how diagnostics are printed.
type ReportConfig struct {
	// Format is "text" or "json".
	Format string `koanf:"format"`
	// Precision is the number of significant digits for floats in text output.
	Precision int `koanf:"precision"`
	// Margins adds the per-row dominance margins to the report.
	Margins bool `koanf:"margins"`
}

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"text", "json"}
	validReportFormats = []string{"text", "json"}
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validLogLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v, got %q", validLogLevels, c.Log.Level))
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v, got %q", validLogFormats, c.Log.Format))
	}
	if !slices.Contains(validReportFormats, c.Report.Format) {
		errs = append(errs, fmt.Errorf("report.format must be one of %v, got %q", validReportFormats, c.Report.Format))
	}
	if c.Report.Precision < 1 || c.Report.Precision > 17 {
		errs = append(errs, fmt.Errorf("report.precision must be in [1, 17], got %d", c.Report.Precision))
	}

	return errors.Join(errs...)
}
