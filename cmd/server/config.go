package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/studious/internal/config"
)

// loadAppConfig loads the application configuration from the environment
// and, when path is set, from a config file.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Auth.PasswordHash != "" {
		slog.Debug("Auth configuration", "password_hash_present", true)
	}

	return cfg, nil
}
