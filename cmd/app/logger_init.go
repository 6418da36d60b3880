package main

import (
	"github.com/osse101/RarityRoll_Go/internal/config"
	"github.com/osse101/RarityRoll_Go/internal/logger"
)

// initLogger installs the default logger from app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}
}
