package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != "8081" {
					t.Errorf("Expected default port 8081, got %s", cfg.Port)
				}
				if cfg.Environment != "development" {
					t.Errorf("Expected default environment development, got %s", cfg.Environment)
				}
				if cfg.Gemini.BaseURL != "https://generativelanguage.googleapis.com/v1beta" {
					t.Errorf("Unexpected default base URL %s", cfg.Gemini.BaseURL)
				}
				if cfg.Gemini.Model != "gemini-2.5-flash-preview-05-20" {
					t.Errorf("Unexpected default model %s", cfg.Gemini.Model)
				}
				if cfg.Gemini.Timeout != 0 {
					t.Errorf("Expected no default timeout, got %v", cfg.Gemini.Timeout)
				}
				if cfg.CORS.AllowOrigin != "*" {
					t.Errorf("Expected default CORS origin *, got %s", cfg.CORS.AllowOrigin)
				}
			},
		},
		{
			name: "environment overrides",
			envVars: map[string]string{
				"PORT":              "9000",
				"ENVIRONMENT":       "production",
				"GEMINI_MODEL":      "gemini-2.0-flash",
				"GEMINI_TIMEOUT":    "45s",
				"CORS_ALLOW_ORIGIN": "https://builds.example.com",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("Expected port 9000, got %s", cfg.Port)
				}
				if !cfg.IsProduction() {
					t.Error("Expected production environment")
				}
				if cfg.Gemini.Model != "gemini-2.0-flash" {
					t.Errorf("Expected model override, got %s", cfg.Gemini.Model)
				}
				if cfg.Gemini.Timeout != 45*time.Second {
					t.Errorf("Expected 45s timeout, got %v", cfg.Gemini.Timeout)
				}
				if cfg.CORS.AllowOrigin != "https://builds.example.com" {
					t.Errorf("Expected CORS override, got %s", cfg.CORS.AllowOrigin)
				}
			},
		},
		{
			name:    "invalid timeout",
			envVars: map[string]string{"GEMINI_TIMEOUT": "soon"},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			envVars: map[string]string{"GEMINI_TIMEOUT": "-1s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestEnvCredentials(t *testing.T) {
	creds := NewEnvCredentials()

	t.Setenv(APIKeyEnv, "")
	if _, ok := creds.APIKey(); ok {
		t.Error("Expected empty key to be reported as missing")
	}

	t.Setenv(APIKeyEnv, "first")
	if key, ok := creds.APIKey(); !ok || key != "first" {
		t.Errorf("Expected key first, got %q (ok=%v)", key, ok)
	}

	// Read on every call, so rotation is picked up
	t.Setenv(APIKeyEnv, "second")
	if key, _ := creds.APIKey(); key != "second" {
		t.Errorf("Expected rotated key second, got %q", key)
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{Environment: "production", LogLevel: "debug"})
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter in production, got %T", logger.Formatter)
	}

	logger = NewLogger(&Config{Environment: "development", LogLevel: "nonsense"})
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level fallback, got %v", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("Expected text formatter in development, got %T", logger.Formatter)
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	cfg := &Config{Environment: "development"}
	adapted := AdaptConfigForServerless(cfg)

	if IsServerlessMode() {
		if adapted.Environment != "production" {
			t.Errorf("Expected production environment in Lambda, got %s", adapted.Environment)
		}
		return
	}
	if adapted.Environment != "development" {
		t.Errorf("Expected environment unchanged outside Lambda, got %s", adapted.Environment)
	}
	if GetDeploymentMode() != "server" {
		t.Errorf("Expected server deployment mode, got %s", GetDeploymentMode())
	}
}
