// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultRedirectPort is the default plaintext port redirected to HTTPS.
	DefaultRedirectPort = 8081

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultDatabaseMaxOpenConns is the default connection pool ceiling.
	DefaultDatabaseMaxOpenConns = 25

	// DefaultDatabaseMaxIdleConns is the default number of idle pooled connections.
	DefaultDatabaseMaxIdleConns = 5

	// DefaultLocationPrefix is prepended to /quotes/{id} in Location headers.
	DefaultLocationPrefix = "/api"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Database  DatabaseConfig  `koanf:"database"  validate:"required"`
	Quotes    QuotesConfig    `koanf:"quotes"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port             int           `koanf:"port"              validate:"required,min=1,max=65535"`
	Host             string        `koanf:"host"              validate:"required"`
	ReadTimeout      time.Duration `koanf:"read_timeout"      validate:"required,min=1s"`
	WriteTimeout     time.Duration `koanf:"write_timeout"     validate:"required,min=1s"`
	IdleTimeout      time.Duration `koanf:"idle_timeout"      validate:"required,min=1s"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"  validate:"required,min=1s"`
	RequestTimeout   time.Duration `koanf:"request_timeout"   validate:"min=0"`
	ReadinessTimeout time.Duration `koanf:"readiness_timeout" validate:"min=0"`
	MaxRequestSize   int64         `koanf:"max_request_size"  validate:"required,min=1"`
	TLS              TLSConfig     `koanf:"tls"`
}

// TLSConfig enables HTTPS. When enabled, a plaintext listener on RedirectPort
// redirects every request to the HTTPS endpoint.
type TLSConfig struct {
	Enabled      bool   `koanf:"enabled"`
	CertFile     string `koanf:"cert_file"     validate:"required_if=Enabled true"`
	KeyFile      string `koanf:"key_file"      validate:"required_if=Enabled true"`
	RedirectPort int    `koanf:"redirect_port" validate:"omitempty,min=1,max=65535"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure     bool    `koanf:"insecure"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// DatabaseConfig contains relational store settings.
// Password is supplied separately from DSN and combined at connect time.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"            validate:"required,oneof=postgres sqlite"`
	DSN             string        `koanf:"dsn"               validate:"required"`
	Password        string        `koanf:"password"`
	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"min=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	SlowThreshold   time.Duration `koanf:"slow_threshold"    validate:"min=0"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// QuotesConfig contains settings for the quote endpoints.
type QuotesConfig struct {
	LocationPrefix string `koanf:"location_prefix" validate:"omitempty,startswith=/"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotes-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":              DefaultServerPort,
		"server.host":              "0.0.0.0",
		"server.read_timeout":      "30s",
		"server.write_timeout":     "30s",
		"server.idle_timeout":      "120s",
		"server.shutdown_timeout":  "10s",
		"server.request_timeout":   "30s",
		"server.readiness_timeout": "2s",
		"server.max_request_size":  DefaultMaxRequestSize,
		"server.tls.enabled":       false,
		"server.tls.cert_file":     "",
		"server.tls.key_file":      "",
		"server.tls.redirect_port": DefaultRedirectPort,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.insecure":      true,
		"telemetry.service_name":  "quotes-service",
		"telemetry.sampling_rate": 1.0,

		"database.driver":            "postgres",
		"database.dsn":               "postgres://quotes@localhost:5432/quotes?sslmode=disable",
		"database.password":          "",
		"database.max_open_conns":    DefaultDatabaseMaxOpenConns,
		"database.max_idle_conns":    DefaultDatabaseMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.slow_threshold":    "200ms",
		"database.auto_migrate":      true,

		"quotes.location_prefix": DefaultLocationPrefix,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables with APP_ prefix
	err = k.Load(env.Provider("APP_", ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_DATABASE_PASSWORD to database.password.
// Keys whose leaf contains an underscore cannot be set from the environment.
func envKey(s string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, "APP_")),
		"_",
		".",
	)
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
