package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"launchdash/internal/errors"
)

// Data source kinds
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceDemo     = "demo"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Database  DatabaseConfig
	Dashboard DashboardConfig
	Profiling ProfilingConfig
	LogLevel  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// DataConfig selects where launch records are loaded from
type DataConfig struct {
	Source  string
	File    string
	Columns ColumnConfig
}

// ColumnConfig names the launch file columns
type ColumnConfig struct {
	LaunchSite             string
	PayloadMass            string
	Class                  string
	BoosterVersionCategory string
	FlightNumber           string
	BoosterVersion         string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Database:  DatabaseConfig{URL: getEnvOrDefault("DATABASE_URL", "")},
		Profiling: *loadProfilingConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	dashboard := DefaultDashboardConfig()
	if path := os.Getenv("DASHBOARD_CONFIG"); path != "" {
		loaded, err := LoadDashboardFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load dashboard configuration")
		}
		dashboard = *loaded
	}
	config.Dashboard = dashboard

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadDataConfig() *DataConfig {
	file := getEnvOrDefault("DATA_FILE", "")
	source := strings.ToLower(getEnvOrDefault("DATA_SOURCE", ""))
	if source == "" {
		source = SourceDemo
		if file != "" {
			source = SourceFile
		}
	}

	return &DataConfig{
		Source: source,
		File:   file,
		Columns: ColumnConfig{
			LaunchSite:             getEnvOrDefault("COLUMN_LAUNCH_SITE", "Launch Site"),
			PayloadMass:            getEnvOrDefault("COLUMN_PAYLOAD_MASS", "Payload Mass (kg)"),
			Class:                  getEnvOrDefault("COLUMN_CLASS", "class"),
			BoosterVersionCategory: getEnvOrDefault("COLUMN_BOOSTER_CATEGORY", "Booster Version Category"),
			FlightNumber:           getEnvOrDefault("COLUMN_FLIGHT_NUMBER", "Flight Number"),
			BoosterVersion:         getEnvOrDefault("COLUMN_BOOSTER_VERSION", "Booster Version"),
		},
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

// Validate checks cross-field requirements
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + strconv.Quote(c.Server.Port))
	}

	switch c.Data.Source {
	case SourceFile:
		if c.Data.File == "" {
			return errors.ConfigInvalid("DATA_FILE is required when DATA_SOURCE=file")
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
	case SourceDemo:
	default:
		return errors.ConfigInvalid("unknown DATA_SOURCE " + strconv.Quote(c.Data.Source))
	}

	if c.Data.Columns.LaunchSite == "" || c.Data.Columns.PayloadMass == "" ||
		c.Data.Columns.Class == "" || c.Data.Columns.BoosterVersionCategory == "" {
		return errors.ConfigInvalid("launch site, payload, class and booster category columns must be named")
	}

	return c.Dashboard.Validate()
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
