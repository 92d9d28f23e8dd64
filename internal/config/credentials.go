package config

import "os"

// EnvCredentials reads the API key from the process environment on each call
type EnvCredentials struct {
	Key string
}

// NewEnvCredentials returns a credential source for GEMINI_API_KEY
func NewEnvCredentials() *EnvCredentials {
	return &EnvCredentials{Key: APIKeyEnv}
}

// APIKey returns the configured key and whether it is set and non-empty
func (c *EnvCredentials) APIKey() (string, bool) {
	value := os.Getenv(c.Key)
	return value, value != ""
}
