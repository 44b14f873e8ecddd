package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all console configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Pharmacy console specifics
	Backend   BackendConfig
	Inventory InventoryConfig
	Session   SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the pharmacy backend (FastAPI, usually behind
// an ngrok tunnel during development).
type BackendConfig struct {
	BaseURL           string
	SkipTunnelWarning bool
	Timeout           time.Duration
	RequestsPerSec    float64
	Burst             int
}

type InventoryConfig struct {
	PageSize        int
	NotificationTTL time.Duration
}

type SessionConfig struct {
	TokenPath string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backend
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.SkipTunnelWarning = viper.GetBool("backend.skip_tunnel_warning")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.RequestsPerSec = viper.GetFloat64("backend.requests_per_sec")
	cfg.Backend.Burst = viper.GetInt("backend.burst")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required")
	}

	// Inventory view
	cfg.Inventory.PageSize = viper.GetInt("inventory.page_size")
	cfg.Inventory.NotificationTTL = viper.GetDuration("inventory.notification_ttl")

	// Session
	cfg.Session.TokenPath = viper.GetString("session.token_path")
	if cfg.Session.TokenPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		cfg.Session.TokenPath = filepath.Join(configDir, "pharmacy-inventory-console", "token.json")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 300)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.skip_tunnel_warning", true)
	viper.SetDefault("backend.timeout", "30s")
	viper.SetDefault("backend.requests_per_sec", 0)
	viper.SetDefault("backend.burst", 0)

	viper.SetDefault("inventory.page_size", 10)
	viper.SetDefault("inventory.notification_ttl", "3s")
}
