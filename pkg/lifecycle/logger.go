package lifecycle

import (
	"context"

	"github.com/lokasync/cloudota/pkg/logger"
)

// CreateLogger creates a new logger instance with the provided configuration.
// This returns a logger that can be injected into services.
func CreateLogger(ctx context.Context, config *logger.Config) (logger.Logger, error) {
	return logger.New(ctx, config)
}

// CreateComponentLogger creates a logger scoped to a specific component.
func CreateComponentLogger(ctx context.Context, component string, config *logger.Config) (logger.Logger, error) {
	return logger.NewWithComponent(ctx, component, config)
}

// ShutdownLogger shuts down the logger, flushing any pending log exports.
func ShutdownLogger() error {
	return logger.Shutdown()
}
