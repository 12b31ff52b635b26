// Package lifecycle runs services with ordered startup and shutdown.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lokasync/cloudota/pkg/logger"
)

const defaultShutdownTimeout = 30 * time.Second

// Service is a long-running component with explicit start and stop.
// Stop must be safe to call after a failed or partial Start.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// ServerOptions configures RunServer.
type ServerOptions struct {
	ServiceName string
	// Services are started in order and stopped in reverse order, so a
	// message consumer listed before its store stops draining before the
	// store handle is released.
	Services        []Service
	Logger          logger.Logger
	ShutdownTimeout time.Duration
}

// RunServer starts every service, blocks until the context is cancelled or
// a SIGINT/SIGTERM arrives, then stops the services in reverse order.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	log := opts.Logger
	if log == nil {
		log = logger.NewTestLogger()
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	started := make([]Service, 0, len(opts.Services))

	for _, svc := range opts.Services {
		if err := svc.Start(ctx); err != nil {
			stopServices(started, log, opts.ShutdownTimeout)
			return fmt.Errorf("failed to start %s: %w", opts.ServiceName, err)
		}

		started = append(started, svc)
	}

	log.Info().Str("service", opts.ServiceName).Msg("Service started")

	<-ctx.Done()

	log.Info().Str("service", opts.ServiceName).Msg("Shutting down")

	if err := stopServices(started, log, opts.ShutdownTimeout); err != nil {
		return err
	}

	return nil
}

func stopServices(services []Service, log logger.Logger, timeout time.Duration) error {
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error

	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Stop(stopCtx); err != nil {
			log.Error().Err(err).Msg("Service stop failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
