package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	Timer  TimerConfig  `mapstructure:"timer"  validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains the sign-in gate settings.
// Exactly one credential is accepted. PasswordHash takes precedence over
// Password when both are set.
type AuthConfig struct {
	Username             string `mapstructure:"username"               validate:"required"`
	Password             string `mapstructure:"password"               validate:"required_without=PasswordHash"`
	PasswordHash         string `mapstructure:"password_hash"`
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// TimerConfig controls the countdown timer.
type TimerConfig struct {
	// DefaultSeconds is the duration a fresh timer starts with.
	DefaultSeconds int `mapstructure:"default_seconds" validate:"gte=0,lt=360000"`
	// TickMillis is the interval between countdown ticks.
	TickMillis int `mapstructure:"tick_millis" validate:"required,gt=0"`
}

// CORSConfig lists origins allowed to reach the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
