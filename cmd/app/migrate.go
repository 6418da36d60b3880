package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/RarityRoll_Go/internal/config"
	"github.com/osse101/RarityRoll_Go/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect the embedded schema migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{database.MigrateUp, database.MigrateDown, database.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			initLogger(cfg)

			pool, err := database.NewPool(cmd.Context(), cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLifetime)
			if err != nil {
				return err
			}
			defer pool.Close()

			return database.Migrate(cmd.Context(), pool, args[0])
		},
	}
}
