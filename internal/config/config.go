package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the upload server configuration. Loaded once at start-up;
// nothing mutates it afterwards.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"ENV"`
	LogFormat      string `mapstructure:"LOG_FORMAT"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"`

	// TempDir is where uploaded files are staged before validation; empty
	// means the system default.
	TempDir string `mapstructure:"TEMP_DIR"`
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("MAX_UPLOAD_BYTES", int64(10<<20))
	v.SetDefault("TEMP_DIR", "")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("LOG_FORMAT")
	v.BindEnv("MAX_UPLOAD_BYTES")
	v.BindEnv("TEMP_DIR")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}

	return cfg, nil
}

// IsDev reports whether the server runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
