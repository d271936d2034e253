// Package config loads application configuration from files and environment
// variables via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pediasafe-screening-server/internal/domain"
)

// Manager loads and validates the application configuration.
type Manager struct {
	config *domain.Config
}

// NewManager creates a configuration manager. Configuration is read from an
// optional config.yaml, overridden by PEDIASAFE_-prefixed environment
// variables, with sensible defaults for everything else.
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/pediasafe-screening-server/")

	viper.SetEnvPrefix("PEDIASAFE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// openFDA defaults; 4 req/s stays under the 40/min anonymous quota
	viper.SetDefault("openfda.base_url", "https://api.fda.gov/drug")
	viper.SetDefault("openfda.api_key", "")
	viper.SetDefault("openfda.timeout", "10s")
	viper.SetDefault("openfda.rate_limit", 4)
	viper.SetDefault("openfda.result_limit", 10)
	viper.SetDefault("openfda.circuit_breaker.max_requests", 3)
	viper.SetDefault("openfda.circuit_breaker.interval", "30s")
	viper.SetDefault("openfda.circuit_breaker.timeout", "60s")
	viper.SetDefault("openfda.circuit_breaker.failure_threshold", 5)

	// Resolver defaults
	viper.SetDefault("resolver.cache_size", 1024)
	viper.SetDefault("resolver.workers", 4)

	// Cache defaults; empty redis_url disables the Redis tier
	viper.SetDefault("cache.redis_url", "")
	viper.SetDefault("cache.default_ttl", "24h")

	// History defaults
	viper.SetDefault("history.driver", "sqlite")
	viper.SetDefault("history.sqlite_path", "./data/screenings.db")
	viper.SetDefault("history.database_url", "")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// GetConfig returns the complete configuration.
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// Validate checks the loaded configuration for values the application cannot
// run with.
func (m *Manager) Validate() error {
	c := m.config

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.OpenFDA.BaseURL == "" {
		return fmt.Errorf("openfda base_url is required")
	}
	if c.OpenFDA.RateLimit <= 0 {
		return fmt.Errorf("openfda rate_limit must be positive")
	}
	if c.OpenFDA.ResultLimit <= 0 || c.OpenFDA.ResultLimit > 10 {
		return fmt.Errorf("openfda result_limit must be between 1 and 10")
	}

	if c.Resolver.CacheSize <= 0 {
		return fmt.Errorf("resolver cache_size must be positive")
	}
	if c.Resolver.Workers <= 0 {
		return fmt.Errorf("resolver workers must be positive")
	}

	switch c.History.Driver {
	case "sqlite":
		if c.History.SQLitePath == "" {
			return fmt.Errorf("history sqlite_path is required for the sqlite driver")
		}
	case "postgres":
		if c.History.DatabaseURL == "" {
			return fmt.Errorf("history database_url is required for the postgres driver")
		}
	case "none":
	default:
		return fmt.Errorf("invalid history driver: %s", c.History.Driver)
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	return nil
}
