package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configEnvVars lists every env var the config package reads.
var configEnvVars = []string{
	"SERVER_PORT",
	"SERVER_READ_TIMEOUT",
	"SERVER_WRITE_TIMEOUT",
	"TRAVELPAYOUTS_API_TOKEN",
	"TRAVELPAYOUTS_MARKER",
	"TIMEOUT_FLIGHTS_FETCH",
	"TIMEOUT_HOTELS_FETCH",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"APP_ENV",
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "1m0s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Provider defaults
	assert.Empty(t, cfg.Provider.Token, "token has no default")
	assert.Equal(t, "297036", cfg.Provider.Marker, "default affiliate marker")

	// Timeout defaults
	assert.Equal(t, "30s", cfg.Timeouts.FlightsFetch.String(), "default flights fetch timeout")
	assert.Equal(t, "15s", cfg.Timeouts.HotelsFetch.String(), "default hotels fetch timeout")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":             "3000",
		"SERVER_READ_TIMEOUT":     "30s",
		"SERVER_WRITE_TIMEOUT":    "90s",
		"TRAVELPAYOUTS_API_TOKEN": "test-token",
		"TRAVELPAYOUTS_MARKER":    "12345",
		"TIMEOUT_FLIGHTS_FETCH":   "20s",
		"TIMEOUT_HOTELS_FETCH":    "10s",
		"LOG_LEVEL":               "debug",
		"LOG_FORMAT":              "console",
		"APP_ENV":                 "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "90s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "test-token", cfg.Provider.Token)
	assert.Equal(t, "12345", cfg.Provider.Marker)
	assert.Equal(t, "20s", cfg.Timeouts.FlightsFetch.String())
	assert.Equal(t, "10s", cfg.Timeouts.HotelsFetch.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 8080", "8080", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s", "SERVER_READ_TIMEOUT must be positive"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero flights timeout", "TIMEOUT_FLIGHTS_FETCH", "0s", "TIMEOUT_FLIGHTS_FETCH must be positive"},
		{"negative flights timeout", "TIMEOUT_FLIGHTS_FETCH", "-1s", "TIMEOUT_FLIGHTS_FETCH must be positive"},
		{"zero hotels timeout", "TIMEOUT_HOTELS_FETCH", "0s", "TIMEOUT_HOTELS_FETCH must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_WriteTimeoutCoversFetch tests that the server write
// timeout must exceed the flights fetch bound.
func TestLoad_Validation_WriteTimeoutCoversFetch(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_WRITE_TIMEOUT":  "30s",
		"TIMEOUT_FLIGHTS_FETCH": "30s",
	})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_WRITE_TIMEOUT")
	assert.Contains(t, err.Error(), "must exceed")
	assert.Nil(t, cfg)
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{"valid development", "development", false},
		{"valid staging", "staging", false},
		{"valid production", "production", false},
		{"invalid local", "local", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestConfig_EnvHelpers tests the environment helper methods.
func TestConfig_EnvHelpers(t *testing.T) {
	dev := &Config{App: AppConfig{Env: "development"}}
	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())

	prod := &Config{App: AppConfig{Env: "production"}}
	assert.False(t, prod.IsDevelopment())
	assert.True(t, prod.IsProduction())
}
