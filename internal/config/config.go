package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port              string
	Env               string
	DataSource        string
	DBPath            string
	SupabaseURL       string
	SupabaseAnonKey   string
	StaticDir         string
	AudioDir          string
	OverridesPath     string
	SpotlightBundleID string
	APIVersion        string
	RequestTimeout    time.Duration
	LogLevel          string
	LogFormat         string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", constants.DefaultPort),
		Env:               getEnv("APP_ENV", constants.DefaultEnv),
		DataSource:        getEnv("DATA_SOURCE", constants.DefaultDataSource),
		DBPath:            getEnv("DB_PATH", constants.DefaultDBPath),
		SupabaseURL:       getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:   getEnv("SUPABASE_ANON_KEY", ""),
		StaticDir:         getEnv("STATIC_DIR", ""),
		AudioDir:          getEnv("AUDIO_DIR", constants.DefaultAudioDir),
		OverridesPath:     getEnv("OVERRIDES_PATH", ""),
		SpotlightBundleID: getEnv("SPOTLIGHT_BUNDLE_ID", constants.DefaultSpotlightBundleID),
		APIVersion:        getEnv("API_VERSION", constants.DefaultAPIVersion),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", constants.DefaultReadTimeout),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}
}

// IsProduction reports whether the server runs with production error payloads.
func (c *Config) IsProduction() bool {
	return c.Env == constants.EnvProduction
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	if c.Env != constants.EnvDevelopment && c.Env != constants.EnvProduction {
		errors = append(errors, fmt.Sprintf("APP_ENV must be one of: development, production, got: %s", c.Env))
	}

	switch c.DataSource {
	case constants.DataSourceSQLite:
		if c.DBPath == "" {
			errors = append(errors, "DB_PATH cannot be empty")
		}
	case constants.DataSourceSupabase:
		if c.SupabaseURL == "" {
			errors = append(errors, "SUPABASE_URL is required when DATA_SOURCE=supabase")
		} else if u, err := url.Parse(c.SupabaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("SUPABASE_URL is not a valid URL: %s", c.SupabaseURL))
		}
		if c.SupabaseAnonKey == "" {
			errors = append(errors, "SUPABASE_ANON_KEY is required when DATA_SOURCE=supabase")
		}
	case constants.DataSourceStatic:
		if c.StaticDir == "" {
			errors = append(errors, "STATIC_DIR is required when DATA_SOURCE=static")
		}
	default:
		errors = append(errors, fmt.Sprintf("DATA_SOURCE must be one of: sqlite, supabase, static, got: %s", c.DataSource))
	}

	if c.RequestTimeout <= 0 {
		errors = append(errors, "REQUEST_TIMEOUT must be a positive duration")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getDuration parses a duration variable, keeping the fallback when unset.
// An unparsable value yields zero so Validate can report it.
func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}
