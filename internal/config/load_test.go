package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies that Load produces a usable configuration when
// no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "user", cfg.Auth.Username)
	assert.Equal(t, "1234", cfg.Auth.Password)
	assert.Equal(t, 300, cfg.Timer.DefaultSeconds)
	assert.Equal(t, 1000, cfg.Timer.TickMillis)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STUDIOUS_SERVER_PORT", "9090")
	t.Setenv("STUDIOUS_SERVER_LOG_LEVEL", "debug")
	t.Setenv("STUDIOUS_AUTH_USERNAME", "student")
	t.Setenv("STUDIOUS_AUTH_JWT_SECRET", "thisisasecretkeythatis32charslong!!")
	t.Setenv("STUDIOUS_TIMER_DEFAULT_SECONDS", "1500")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "student", cfg.Auth.Username)
	assert.Equal(t, "thisisasecretkeythatis32charslong!!", cfg.Auth.JWTSecret)
	assert.Equal(t, 1500, cfg.Timer.DefaultSeconds)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STUDIOUS_SERVER_PORT=7070\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STUDIOUS_SERVER_PORT") })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "studious.yaml")
	content := "server:\n  port: 6060\ntimer:\n  default_seconds: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Timer.DefaultSeconds)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"STUDIOUS_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"STUDIOUS_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Short JWT secret",
			envVars: map[string]string{"STUDIOUS_AUTH_JWT_SECRET": "tooshort"},
		},
		{
			name:    "Zero tick interval",
			envVars: map[string]string{"STUDIOUS_TIMER_TICK_MILLIS": "0"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg)
		})
	}
}

// chdir changes the working directory to dir for the duration of the test,
// restoring the original directory on cleanup (equivalent to Go 1.24's t.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(orig))
	})
}
