package bootstrap

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"

	"github.com/osse101/RarityRoll_Go/internal/server"
)

// ShutdownComponents holds everything that needs an orderly stop
type ShutdownComponents struct {
	Server        *server.Server
	Storage       *Storage
	SentryEnabled bool
}

// GracefulShutdown stops accepting requests, lets in-flight rolls finish,
// then releases storage and flushes pending error reports.
// Errors are logged and never abort the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Storage != nil {
		components.Storage.Close()
	}

	if components.SentryEnabled {
		sentry.Flush(SentryFlushTimeout)
	}

	slog.Info(LogMsgServerStopped)
}
