package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/repository"
)

// RollFunc runs inside the roll transaction once the gate has admitted the user
// at now. Returning an error rolls everything back, including the new last roll time.
type RollFunc func(ctx context.Context, tx repository.RollTx, now time.Time) error

// Clock supplies the current time
type Clock func() time.Time

// FixedClock always reports t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Service manages the per-user roll cooldown
type Service interface {
	// CheckCooldown reports the gate state at now without taking any lock
	CheckCooldown(ctx context.Context, userID string, now time.Time) (domain.CooldownStatus, error)

	// EnforceCooldown atomically checks the gate, runs fn and records the
	// admission time as the user's last roll time. The time used for the locked
	// check comes from clock after the user's roll lock is held, so a request
	// that waited on the lock can never see the winner's roll as being in its
	// future. Returns ErrOnCooldown when cooling.
	EnforceCooldown(ctx context.Context, userID string, clock Clock, fn RollFunc) error

	// GetLastRoll returns the last admitted roll time, nil before the first roll
	GetLastRoll(ctx context.Context, userID string) (*time.Time, error)

	// Duration is the effective cooldown length
	Duration() time.Duration
}

// ErrOnCooldown is returned when the user is still cooling down
type ErrOnCooldown struct {
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf(ErrFmtCooldownRemaining, e.Remaining.Seconds())
}

// Is allows errors.Is() to match both ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
