package services

import (
	"context"

	"pc-build-advisor/internal/gemini"
)

// BuildService defines the build recommendation operation used by handlers
type BuildService interface {
	// GenerateBuild returns the model's JSON text for prompt, unmodified
	GenerateBuild(ctx context.Context, prompt string) ([]byte, error)
}

// ContentGenerator is the upstream generation API
type ContentGenerator interface {
	GenerateContent(ctx context.Context, apiKey string, req *gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error)
}

// CredentialSource supplies the upstream API key. It is consulted on every
// request so a rotated secret takes effect without a restart.
type CredentialSource interface {
	APIKey() (string, bool)
}

// CredentialFunc adapts a plain function to CredentialSource
type CredentialFunc func() (string, bool)

// APIKey implements CredentialSource
func (f CredentialFunc) APIKey() (string, bool) {
	return f()
}
