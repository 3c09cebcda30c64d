package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/agenda-api/internal/config"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
)

// setupAppLogger configures and installs the JSON logger for the configured level.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return l, nil
}
