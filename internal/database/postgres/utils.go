package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
)

// SafeRollback rolls back tx, logging anything other than an already closed transaction
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Default().Warn("Failed to rollback transaction", "error", err)
	}
}

// hashUserLock derives the advisory lock key for a user's roll transaction
func hashUserLock(userID string) int64 {
	h := sha256.Sum256([]byte(RollLockNamespace + userID))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

// epochSeconds converts t to the stored representation of last_roll_time
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}

// fromEpochSeconds is the inverse of epochSeconds, at microsecond precision
func fromEpochSeconds(s float64) time.Time {
	return time.UnixMicro(int64(math.Round(s * 1e6))).UTC()
}

func ptrEpoch(s *float64) *time.Time {
	if s == nil {
		return nil
	}
	t := fromEpochSeconds(*s)
	return &t
}
