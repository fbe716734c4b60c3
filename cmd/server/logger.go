package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/studious/internal/config"
	"github.com/phrazzld/studious/internal/platform/logger"
)

// setupAppLogger configures the application logger from config settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}
