package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/RarityRoll_Go/internal/config"
	"github.com/osse101/RarityRoll_Go/internal/database"
	"github.com/osse101/RarityRoll_Go/internal/database/memory"
	"github.com/osse101/RarityRoll_Go/internal/database/postgres"
	"github.com/osse101/RarityRoll_Go/internal/repository"
)

// Storage is the roll store selected by STORAGE_DRIVER plus its cleanup
type Storage struct {
	Roll  repository.Roll
	close func()
}

// Close releases the underlying pool, if any
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects the configured driver. For postgres it also applies
// pending migrations when AUTO_MIGRATE is set.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		slog.Warn(LogMsgUsingMemoryStorage)
		return &Storage{Roll: memory.NewStore()}, nil

	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
		}
		slog.Info(LogMsgConnectedToDatabase, "host", cfg.DBHost, "db", cfg.DBName)

		if cfg.AutoMigrate {
			if err := database.Migrate(ctx, pool, database.MigrateUp); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgRunMigrations, err)
			}
			slog.Info(LogMsgMigrationsApplied)
		}
		return &Storage{Roll: postgres.NewRollRepository(pool), close: pool.Close}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StorageDriver)
	}
}
