// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Announcements AnnouncementsConfig `mapstructure:"announcements"`
	Dashboard     DashboardConfig     `mapstructure:"dashboard"`
	Telemetry     TelemetryConfig     `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// AnnouncementsConfig holds listing service API configuration.
type AnnouncementsConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	PageSize          int           `mapstructure:"page_size"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// DashboardConfig holds presentation settings.
type DashboardConfig struct {
	ExportDir string `mapstructure:"export_dir"`
	TUIMode   bool   `mapstructure:"-"` // Set at runtime, not from config file
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
	HealthPort     int    `mapstructure:"health_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("SB")
	v.AutomaticEnv()

	// Bind env vars to config keys
	bindEnvVars(v)

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "SB_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "SB_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "SB_LOG_LEVEL", "LOG_LEVEL")

	// Announcements API
	v.BindEnv("announcements.base_url", "SB_API_BASE_URL", "API_BASE_URL")
	v.BindEnv("announcements.page_size", "SB_API_PAGE_SIZE")
	v.BindEnv("announcements.request_timeout", "SB_API_REQUEST_TIMEOUT")
	v.BindEnv("announcements.requests_per_minute", "SB_API_REQUESTS_PER_MINUTE")

	// Dashboard
	v.BindEnv("dashboard.export_dir", "SB_EXPORT_DIR")

	// Telemetry
	v.BindEnv("telemetry.enabled", "SB_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "SB_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "SB_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "sellerboard")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// Announcements API defaults. The reference deployment serves listings
	// from a local json-server instance.
	v.SetDefault("announcements.base_url", "http://localhost:3001")
	v.SetDefault("announcements.page_size", 5)
	v.SetDefault("announcements.request_timeout", "10s")
	v.SetDefault("announcements.requests_per_minute", 120)

	// Dashboard defaults
	v.SetDefault("dashboard.export_dir", ".")

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "sellerboard")
	v.SetDefault("telemetry.prometheus_port", 9090)
	v.SetDefault("telemetry.health_port", 8081)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Announcements.BaseURL == "" {
		return fmt.Errorf("announcements.base_url is required")
	}
	if _, err := url.ParseRequestURI(c.Announcements.BaseURL); err != nil {
		return fmt.Errorf("invalid announcements.base_url: %w", err)
	}
	if c.Announcements.PageSize <= 0 {
		return fmt.Errorf("announcements.page_size must be positive")
	}
	return nil
}
