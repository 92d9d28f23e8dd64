package lambda

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"pc-build-advisor/internal/config"
	"pc-build-advisor/pkg/server"
)

// ConnectionManager keeps the service container alive across warm invocations
type ConnectionManager struct {
	container *server.Container
	mu        sync.Mutex
	loadCfg   func() (*config.Config, error)
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(config.GetOptimizedConfig)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager that builds its
// container from the configuration returned by loadCfg
func NewConnectionManager(loadCfg func() (*config.Config, error)) *ConnectionManager {
	return &ConnectionManager{loadCfg: loadCfg}
}

// GetContainer returns the service container, initializing it on first use.
// A failed initialization is retried on the next invocation.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	cfg, err := cm.loadCfg()
	if err != nil {
		return nil, err
	}
	container, err := server.NewContainer(cfg)
	if err != nil {
		return nil, err
	}

	sc := config.GetServerlessConfig()
	container.Logger.WithFields(logrus.Fields{
		"function": sc.FunctionName,
		"region":   sc.Region,
		"stage":    sc.Stage,
		"mode":     config.GetDeploymentMode(),
		"model":    container.Model(),
	}).Info("Container initialized")

	cm.container = container
	return container, nil
}

// Cleanup releases the container. The next GetContainer builds a new one.
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}
	return nil
}
