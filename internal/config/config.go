// Package config loads jobportal settings from defaults, an optional TOML
// file and JOBPORTAL_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"jobportal/internal/listing"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "JOBPORTAL_CONFIG"

// Config holds application configuration.
type Config struct {
	Catalog   CatalogConfig
	UI        UIConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// CatalogConfig selects the posting dataset. Empty path = built-in table.
type CatalogConfig struct {
	Path string
}

// UIConfig holds the initial view state.
type UIConfig struct {
	ViewMode string `mapstructure:"view_mode"`
	Query    string
}

// LogConfig holds zap settings. Empty file disables logging.
type LogConfig struct {
	File  string
	Level string
}

// TelemetryConfig holds OTLP export settings. Empty endpoint disables tracing.
type TelemetryConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from file and env.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("catalog.path", "")
	v.SetDefault("ui.view_mode", "list")
	v.SetDefault("ui.query", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("telemetry.endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	v.SetDefault("telemetry.service_name", "jobportal")

	v.SetConfigType("toml")
	if p := os.Getenv(ConfigEnv); p != "" {
		v.SetConfigFile(p)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "jobportal"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JOBPORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly named file must exist; the default location is optional.
		if os.Getenv(ConfigEnv) != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return c, c.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, err := listing.ParseViewMode(c.UI.ViewMode); err != nil {
		return errors.Wrap(err, "ui.view_mode")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}

// ViewMode returns the parsed initial view mode, list if invalid.
func (c Config) ViewMode() listing.ViewMode {
	m, _ := listing.ParseViewMode(c.UI.ViewMode)
	return m
}
