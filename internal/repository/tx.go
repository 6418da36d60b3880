package repository

import (
	"context"
)

// Tx defines the interface for transactional operations.
// Rollback after a successful Commit is a no-op, so callers can always defer it.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
