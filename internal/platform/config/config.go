// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> APP_* env
// vars -> DB_* connection env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string          `koanf:"host"`
	Port             int             `koanf:"port"`
	ReadTimeout      time.Duration   `koanf:"read_timeout"`
	WriteTimeout     time.Duration   `koanf:"write_timeout"`
	IdleTimeout      time.Duration   `koanf:"idle_timeout"`
	ReadinessTimeout time.Duration   `koanf:"readiness_timeout"`
	RateLimit        RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig holds the process-wide inbound request limit. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds relational store settings. For the sqlite3 driver
// Name is the database file path and the credential fields are ignored.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Host            string        `koanf:"host"`
	Name            string        `koanf:"name"`
	Params          string        `koanf:"params"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
