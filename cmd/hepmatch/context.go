package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hepmatch/config"
)

// commandContext carries the lazily loaded configuration and logger shared
// by all subcommands.
type commandContext struct {
	configPath *string
	debug      *bool

	cfg    *config.Config
	logger *zap.Logger
}

func newCommandContext(configPath *string, debug *bool) *commandContext {
	return &commandContext{configPath: configPath, debug: debug}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, _, err := config.Load(*c.configPath)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg

	return cfg, nil
}

// ensureLogger builds a production logger writing to stderr at the
// configured level; --debug forces debug.
func (c *commandContext) ensureLogger() (*zap.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = cfg.Logging.Format
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}
	if *c.debug {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger

	return logger, nil
}

func (c *commandContext) close() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}
