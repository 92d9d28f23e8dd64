package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"pc-build-advisor/internal/gemini"
)

// APIKeyEnv is the environment variable holding the Gemini API key
const APIKeyEnv = "GEMINI_API_KEY"

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Gemini      GeminiConfig
	CORS        CORSConfig
}

// GeminiConfig holds upstream API settings. The API key is not part of it;
// it is read per request through EnvCredentials.
type GeminiConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// CORSConfig holds cross-origin settings for the HTTP server
type CORSConfig struct {
	AllowOrigin string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GEMINI_BASE_URL", gemini.DefaultBaseURL)
	viper.SetDefault("GEMINI_MODEL", gemini.DefaultModel)
	viper.SetDefault("GEMINI_TIMEOUT", "0s")
	viper.SetDefault("CORS_ALLOW_ORIGIN", "*")

	timeout, err := time.ParseDuration(viper.GetString("GEMINI_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEMINI_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid GEMINI_TIMEOUT: must not be negative")
	}

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Gemini: GeminiConfig{
			BaseURL: viper.GetString("GEMINI_BASE_URL"),
			Model:   viper.GetString("GEMINI_MODEL"),
			Timeout: timeout,
		},
		CORS: CORSConfig{
			AllowOrigin: viper.GetString("CORS_ALLOW_ORIGIN"),
		},
	}

	return config, nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
