package config

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// TelemetryShutdown flushes and stops the OpenTelemetry providers when set.
	TelemetryShutdown func(context.Context) error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var err error
	if b.TelemetryShutdown != nil {
		if shutdownErr := b.TelemetryShutdown(ctx); shutdownErr != nil {
			err = errors.Join(err, shutdownErr)
		} else {
			b.Logger.Info("Successfully stopped telemetry providers")
		}
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; not worth failing shutdown.
	_ = b.Logger.Sync()

	return err
}
