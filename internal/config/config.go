package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	SupabaseURL     string
	SupabaseAnonKey string
	Env             string
	Port            string
	StoreTimeout    time.Duration
}

// Load reads configuration from environment variables.
// SUPABASE_URL and SUPABASE_ANON_KEY are mandatory; the server must not
// start without a store configuration.
func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		Env:             getEnvWithDefault("ENV", "development"),
		Port:            getEnvWithDefault("PORT", "5000"),
		StoreTimeout:    30 * time.Second,
	}

	if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY must be set")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
