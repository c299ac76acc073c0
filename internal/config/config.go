// Package config manages application configuration.
//
// Configuration is layered: built-in defaults, then an optional YAML file,
// then environment variable overrides. Every setting has a usable default so
// the zero configuration boots a working server. The resulting struct is
// validated once at load time and treated as read-only afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// AppConfig represents the entire application configuration
type AppConfig struct {
	App     AppSettings     `yaml:"app"`
	Server  ServerSettings  `yaml:"server"`
	Logging LoggingSettings `yaml:"logging"`
	CORS    CORSSettings    `yaml:"cors"`
	Assets  AssetSettings   `yaml:"assets"`
}

// AppSettings contains general application settings
type AppSettings struct {
	Environment string `yaml:"environment" env:"APP_ENV" validate:"oneof=development staging production"`
	Name        string `yaml:"name" env:"APP_NAME" validate:"required"`
	Version     string `yaml:"version" env:"APP_VERSION"`
}

// ServerSettings contains HTTP server settings
type ServerSettings struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// LoggingSettings contains logging configuration
type LoggingSettings struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	Format     string `yaml:"format" env:"LOG_FORMAT"`
	RequestLog bool   `yaml:"request_log" env:"LOG_REQUESTS"`
}

// CORSSettings contains CORS configuration. The extension calls the API from
// chrome-extension:// origins, so the default allows everything.
type CORSSettings struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
}

// AssetSettings locates the static directories served alongside the API.
type AssetSettings struct {
	DashboardDir string `yaml:"dashboard_dir" env:"DASHBOARD_DIR" validate:"required"`
	ExtensionDir string `yaml:"extension_dir" env:"EXTENSION_DIR" validate:"required"`
}

// ServerAddress returns the complete server address
func (ss *ServerSettings) ServerAddress() string {
	return fmt.Sprintf("%s:%d", ss.Host, ss.Port)
}

// IsProduction returns true when running in the production environment
func (as *AppSettings) IsProduction() bool {
	return as.Environment == "production"
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		App: AppSettings{
			Environment: "development",
			Name:        "safespace-backend",
			Version:     "dev",
		},
		Server: ServerSettings{
			Host:            "0.0.0.0",
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingSettings{
			Level:      "info",
			Format:     "console",
			RequestLog: true,
		},
		CORS: CORSSettings{
			AllowedOrigins: []string{"*"},
		},
		Assets: AssetSettings{
			DashboardDir: "./dashboard",
			ExtensionDir: "./extension",
		},
	}
}

// Load builds the application configuration.
//
// Parameters:
//   - path: YAML configuration file path; a missing file is not an error,
//     the defaults simply apply
//
// Returns:
//   - The layered, validated configuration
//   - An error if the file is unreadable/malformed, an override cannot be
//     parsed, or validation fails
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			log.Debug().Str("path", path).Msg("Config file not found, using defaults")
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := LoadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
