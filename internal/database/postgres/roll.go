package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/repository"
)

// querier is the subset of pgx shared by the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.Roll = (*RollRepository)(nil)

// RollRepository implements repository.Roll for PostgreSQL
type RollRepository struct {
	db *pgxpool.Pool
}

// NewRollRepository creates a new RollRepository
func NewRollRepository(db *pgxpool.Pool) *RollRepository {
	return &RollRepository{db: db}
}

func (r *RollRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// GetLastRollTime is an unlocked snapshot read
func (r *RollRepository) GetLastRollTime(ctx context.Context, userID string) (*time.Time, error) {
	return getLastRollTime(ctx, r.db, SQLSelectLastRollTime, userID)
}

// GetInventory lists a user's entries, rarest first
func (r *RollRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx, SQLSelectInventory, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	entries := make([]domain.InventoryEntry, 0)
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.Rarity, &e.Modifier, &e.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanInventory, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return entries, nil
}

// BeginRollTx opens a transaction holding the user's advisory lock.
// The lock works before the user row exists, which FOR UPDATE alone cannot do.
func (r *RollRepository) BeginRollTx(ctx context.Context, userID string) (repository.RollTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}

	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashUserLock(userID)); err != nil {
		SafeRollback(ctx, tx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAcquireLock, err)
	}

	if _, err := tx.Exec(ctx, SQLEnsureUser, userID); err != nil {
		SafeRollback(ctx, tx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEnsureUser, err)
	}

	return &rollTx{tx: tx}, nil
}

type rollTx struct {
	tx pgx.Tx
}

func (t *rollTx) GetLastRollTimeForUpdate(ctx context.Context, userID string) (*time.Time, error) {
	return getLastRollTime(ctx, t.tx, SQLSelectLastRollTimeForUpdate, userID)
}

func (t *rollTx) SetLastRollTime(ctx context.Context, userID string, at time.Time) error {
	if _, err := t.tx.Exec(ctx, SQLUpdateLastRollTime, userID, epochSeconds(at)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetLastRollTime, err)
	}
	return nil
}

func (t *rollTx) UpsertInventory(ctx context.Context, userID string, rarity int64, modifier string) (int, error) {
	var count int
	if err := t.tx.QueryRow(ctx, SQLUpsertInventory, userID, rarity, modifier).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertInventory, err)
	}
	return count, nil
}

func (t *rollTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

// Rollback is a no-op once the transaction has been committed
func (t *rollTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

func getLastRollTime(ctx context.Context, q querier, sql, userID string) (*time.Time, error) {
	var seconds *float64
	err := q.QueryRow(ctx, sql, userID).Scan(&seconds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLastRollTime, err)
	}
	return ptrEpoch(seconds), nil
}
