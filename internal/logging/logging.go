// Package logging builds the console's zap logger. The console owns the
// terminal, so log output only ever goes to a file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/foundry-code/console/internal/config"
)

// New returns a logger writing JSON to cfg.LogFile, or a no-op logger when
// no file is configured.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		var err error
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("foundry"), nil
}
