package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pc-build-advisor/internal/config"
	"pc-build-advisor/internal/gemini"
	"pc-build-advisor/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	BuildService services.BuildService

	// Internal dependencies
	gemini   *gemini.Client
	services *services.ServiceContainer
}

// Option customizes container construction
type Option func(*containerOptions)

type containerOptions struct {
	generator   services.ContentGenerator
	credentials services.CredentialSource
	logger      *logrus.Logger
}

// WithGenerator replaces the Gemini client, mainly for tests
func WithGenerator(g services.ContentGenerator) Option {
	return func(o *containerOptions) { o.generator = g }
}

// WithCredentials replaces the environment credential source
func WithCredentials(c services.CredentialSource) Option {
	return func(o *containerOptions) { o.credentials = c }
}

// WithLogger sets the logger shared by all components
func WithLogger(l *logrus.Logger) Option {
	return func(o *containerOptions) { o.logger = l }
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	o := &containerOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = config.NewLogger(cfg)
	}
	if o.credentials == nil {
		o.credentials = config.NewEnvCredentials()
	}

	var client *gemini.Client
	if o.generator == nil {
		client = gemini.NewClient(gemini.ClientConfig{
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
		})
		o.generator = client
	}

	serviceContainer, err := services.NewServiceContainer(&services.ServiceConfig{
		Generator:   o.generator,
		Credentials: o.credentials,
		Logger:      o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}
	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service container: %w", err)
	}

	return &Container{
		Config:       cfg,
		Logger:       o.logger,
		BuildService: serviceContainer.BuildService,
		gemini:       client,
		services:     serviceContainer,
	}, nil
}

// Model returns the upstream model id, or "" when a custom generator is used
func (c *Container) Model() string {
	if c.gemini == nil {
		return ""
	}
	return c.gemini.Model()
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}
	return nil
}
