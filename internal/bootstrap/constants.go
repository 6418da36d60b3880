package bootstrap

import "time"

// Shutdown
const (
	SentryFlushTimeout = 2 * time.Second
)

// Log messages
const (
	LogMsgUsingMemoryStorage         = "Using in-memory storage; data is lost on restart"
	LogMsgConnectedToDatabase        = "Connected to database"
	LogMsgMigrationsApplied          = "Database migrations applied"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSentryInitialized          = "Sentry initialized"
	LogMsgSentryInitFailed           = "Sentry init failed"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgServerStopped              = "Server stopped"
	LogMsgRollRejected               = "Roll rejected by cooldown"
)

// Error messages
const (
	ErrMsgConnectDatabase = "failed to connect to database"
	ErrMsgRunMigrations   = "failed to run migrations"
	ErrMsgUnknownDriver   = "unknown storage driver"
)
