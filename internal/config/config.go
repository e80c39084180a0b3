package config

import (
	"os"
	"strconv"
	"time"

	"mindwell/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	AI       AIConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// AIConfig holds generative-language backend settings.
// An empty APIKey disables the remote analysis path; the analyzer then runs
// in permanent deterministic fallback.
type AIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Timeout     time.Duration
	SystemRole  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		AI: AIConfig{
			APIKey:     os.Getenv("OPENAI_API_KEY"),
			Model:      getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
			BaseURL:    getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
			MaxTokens:  getEnvIntOrDefault("MAX_TOKENS", 2000),
			Timeout:    time.Duration(getEnvIntOrDefault("AI_TIMEOUT_MS", 30000)) * time.Millisecond,
			SystemRole: "You are an expert journal analyst and therapist. Analyze journal entries with empathy and insight.",
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
	}

	if config.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.AI.Timeout <= 0 {
		return nil, errors.ConfigInvalid("AI_TIMEOUT_MS must be positive")
	}

	return config, nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
