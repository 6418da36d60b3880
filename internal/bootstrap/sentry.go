package bootstrap

import (
	"log/slog"

	"github.com/getsentry/sentry-go"

	"github.com/osse101/RarityRoll_Go/internal/config"
)

// InitSentry enables error reporting when SENTRY_DSN is set. It reports
// whether the client is live so the router can install the sentry middleware.
func InitSentry(cfg *config.Config) bool {
	if cfg.SentryDSN == "" {
		return false
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     cfg.Version,
	}); err != nil {
		slog.Error(LogMsgSentryInitFailed, "error", err)
		return false
	}
	slog.Info(LogMsgSentryInitialized, "environment", cfg.Environment)
	return true
}
