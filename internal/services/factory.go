package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	BuildService BuildService
}

// ServiceConfig holds dependencies for services
type ServiceConfig struct {
	Generator   ContentGenerator
	Credentials CredentialSource
	Logger      *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(config *ServiceConfig) (*ServiceContainer, error) {
	if config == nil {
		return nil, fmt.Errorf("service config cannot be nil")
	}
	if config.Generator == nil {
		return nil, fmt.Errorf("content generator cannot be nil")
	}
	if config.Credentials == nil {
		return nil, fmt.Errorf("credential source cannot be nil")
	}

	return &ServiceContainer{
		BuildService: NewBuildGenerator(config.Generator, config.Credentials, config.Logger),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.BuildService == nil {
		return fmt.Errorf("build service is nil")
	}
	return nil
}

// Close performs cleanup for all services
func (sc *ServiceContainer) Close() error {
	return nil
}
