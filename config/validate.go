package config

import (
	"errors"
	"fmt"
)

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
)

// Validate ensures the configuration is usable. Matching settings are
// checked by pipeline.Config.Validate, cost names by pipeline.New.
func (c *Config) Validate() error {
	if err := c.validateRun(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.Pipeline().Validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}

	return nil
}

func (c *Config) validateRun() error {
	if c.Run.Workers < 0 {
		return errors.New("run.workers must be >= 0")
	}

	return nil
}

func (c *Config) validateLogging() error {
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}

	return nil
}
