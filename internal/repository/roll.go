package repository

import (
	"context"
	"time"

	"github.com/osse101/RarityRoll_Go/internal/domain"
)

// Roll defines persistence for the roll engine: one user's last roll time
// and inventory ledger.
type Roll interface {
	// GetLastRollTime is an unlocked snapshot read. nil means never rolled.
	GetLastRollTime(ctx context.Context, userID string) (*time.Time, error)

	// GetInventory returns entries ordered by rarity descending, then modifier name.
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)

	// BeginRollTx opens a transaction that holds the user's roll lock until
	// Commit or Rollback. Concurrent callers for the same user serialize here.
	BeginRollTx(ctx context.Context, userID string) (RollTx, error)

	// Ping reports whether the store is reachable
	Ping(ctx context.Context) error
}

// RollTx is the per-user atomic unit: read last roll time, write it, upsert inventory
type RollTx interface {
	Tx
	GetLastRollTimeForUpdate(ctx context.Context, userID string) (*time.Time, error)
	SetLastRollTime(ctx context.Context, userID string, at time.Time) error
	// UpsertInventory increments the (rarity, modifier) row or inserts it with count 1.
	// Returns the row's count after the write.
	UpsertInventory(ctx context.Context, userID string, rarity int64, modifier string) (int, error)
}
