package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"pc-build-advisor/internal/gemini"
	"pc-build-advisor/internal/models"
)

// BuildGenerator implements BuildService on top of a ContentGenerator
type BuildGenerator struct {
	generator   ContentGenerator
	credentials CredentialSource
	validator   *validator.Validate
	logger      *logrus.Logger
}

// NewBuildGenerator creates a new build generator
func NewBuildGenerator(generator ContentGenerator, credentials CredentialSource, logger *logrus.Logger) *BuildGenerator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BuildGenerator{
		generator:   generator,
		credentials: credentials,
		validator:   validator.New(),
		logger:      logger,
	}
}

// GenerateBuild validates prompt, calls the model once and returns the text of
// the first candidate exactly as received. Every failure is a *Error.
func (s *BuildGenerator) GenerateBuild(ctx context.Context, prompt string) ([]byte, error) {
	if err := s.validator.Struct(&models.GenerateRequest{Prompt: prompt}); err != nil {
		return nil, NewValidationError(fmt.Errorf("%w: %v", ErrPromptRequired, err))
	}

	apiKey, ok := "", false
	if s.credentials != nil {
		apiKey, ok = s.credentials.APIKey()
	}
	if !ok || apiKey == "" {
		return nil, NewConfigurationError(ErrAPIKeyMissing)
	}

	resp, err := s.generator.GenerateContent(ctx, apiKey, NewBuildRequest(prompt))
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			s.logger.WithFields(logrus.Fields{
				"status_code": apiErr.StatusCode,
				"body":        string(apiErr.Body),
			}).Error("Google API error")

			msg, found := apiErr.Message()
			if !found {
				msg = undefinedMessage
			}
			return nil, NewUpstreamError(apiErr.StatusCode, msg, err)
		}
		return nil, NewInternalError(err)
	}

	text, err := resp.FirstText()
	if err != nil {
		return nil, NewInternalError(err)
	}

	return []byte(text), nil
}

var _ BuildService = (*BuildGenerator)(nil)
