package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "STUDIOUS"

// defaultJWTSecret is only suitable for local, single-user sessions.
const defaultJWTSecret = "studious-local-session-signing-key-change-me"

// Load reads configuration from the environment (optionally seeded from a
// .env file in the working directory) and validates it.
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile behaves like Load but also reads the given config file.
// Environment variables take precedence over values from the file.
func LoadFromFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("auth.username", "user")
	v.SetDefault("auth.password", "1234")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("auth.jwt_secret", defaultJWTSecret)
	v.SetDefault("auth.token_lifetime_minutes", 720)

	v.SetDefault("timer.default_seconds", 5*60)
	v.SetDefault("timer.tick_millis", 1000)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}
