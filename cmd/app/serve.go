package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/osse101/RarityRoll_Go/docs"
	"github.com/osse101/RarityRoll_Go/internal/bootstrap"
	"github.com/osse101/RarityRoll_Go/internal/config"
	"github.com/osse101/RarityRoll_Go/internal/rng"
	"github.com/osse101/RarityRoll_Go/internal/server"
	"github.com/osse101/RarityRoll_Go/internal/session"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sentryEnabled := bootstrap.InitSentry(cfg)

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}

	sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SessionCookie)
	if err != nil {
		storage.Close()
		return err
	}

	bus := bootstrap.InitializeEventSystem()
	rollSvc := bootstrap.InitializeRollService(cfg, storage.Roll, rng.Default(), bus)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		SentryEnabled:  sentryEnabled,
	}, storage.Roll, rollSvc, sessions)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:        srv,
		Storage:       storage,
		SentryEnabled: sentryEnabled,
	})
	return err
}
