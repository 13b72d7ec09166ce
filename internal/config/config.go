// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// ProviderConfig holds credentials for the Travelpayouts data API.
type ProviderConfig struct {
	// Token authenticates calls to the pricing API. It is read per process,
	// never logged, and never returned to callers.
	Token string `env:"TRAVELPAYOUTS_API_TOKEN"`

	// Marker is the affiliate marker embedded in booking deep links.
	Marker string `env:"TRAVELPAYOUTS_MARKER" envDefault:"297036"`
}

// TimeoutConfig holds timeout settings for outbound provider calls.
type TimeoutConfig struct {
	FlightsFetch time.Duration `env:"TIMEOUT_FLIGHTS_FETCH" envDefault:"30s"`
	HotelsFetch  time.Duration `env:"TIMEOUT_HOTELS_FETCH" envDefault:"15s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// A missing token is reported per request as a configuration error
	// rather than failing startup, matching the proxy's error contract.
	if cfg.Provider.Token == "" {
		log.Warn().Msg("TRAVELPAYOUTS_API_TOKEN is not set; search requests will fail until configured")
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.FlightsFetch <= 0 {
		return fmt.Errorf("TIMEOUT_FLIGHTS_FETCH must be positive")
	}
	if cfg.Timeouts.HotelsFetch <= 0 {
		return fmt.Errorf("TIMEOUT_HOTELS_FETCH must be positive")
	}

	// The server write timeout must outlast the longest outbound fetch,
	// otherwise the proxy cuts off responses it is still waiting to relay.
	if cfg.Server.WriteTimeout <= cfg.Timeouts.FlightsFetch {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) must exceed TIMEOUT_FLIGHTS_FETCH (%s)",
			cfg.Server.WriteTimeout, cfg.Timeouts.FlightsFetch)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
