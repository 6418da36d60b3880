package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/logger"
	"github.com/osse101/RarityRoll_Go/internal/repository"
)

// backend implements Service on top of a roll repository. Mutual exclusion
// comes from the repository's roll transaction, not from this process.
type backend struct {
	repo   repository.Roll
	config Config
	cache  *lastRollCache
}

// NewService creates a cooldown service backed by repo
func NewService(repo repository.Roll, config Config) Service {
	b := &backend{
		repo:   repo,
		config: config,
	}
	if config.CacheSize > 0 && config.CacheTTL > 0 {
		b.cache = newLastRollCache(config.CacheSize, config.CacheTTL)
	}
	return b
}

func (b *backend) Duration() time.Duration {
	return b.config.GetCooldownDuration()
}

// CheckCooldown reads the last roll time, from the cache when possible
func (b *backend) CheckCooldown(ctx context.Context, userID string, now time.Time) (domain.CooldownStatus, error) {
	if b.config.DevMode {
		return domain.CooldownStatus{}, nil
	}

	lastRoll, ok := b.cachedLastRoll(userID)
	if !ok {
		var err error
		lastRoll, err = b.repo.GetLastRollTime(ctx, userID)
		if err != nil {
			return domain.CooldownStatus{}, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
		}
		b.storeLastRoll(userID, lastRoll)
	}

	return Evaluate(now, lastRoll, b.Duration()), nil
}

// EnforceCooldown atomically checks cooldown and executes fn if allowed.
// Uses the check-then-lock pattern: an unlocked read rejects most cooling
// requests before any transaction is opened.
func (b *backend) EnforceCooldown(ctx context.Context, userID string, clock Clock, fn RollFunc) error {
	log := logger.FromContext(ctx)
	d := b.Duration()

	// PHASE 1: cheap unlocked check straight from storage
	if !b.config.DevMode {
		lastRoll, err := b.repo.GetLastRollTime(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgCheckCooldownFailed, err)
		}
		if status := Evaluate(clock(), lastRoll, d); status.OnCooldown {
			log.Debug(LogMsgCooldownActive, "user_id", userID, "remaining", status.Remaining)
			return ErrOnCooldown{Remaining: status.Remaining}
		}
	}

	// PHASE 2: roll transaction holding the per-user lock
	tx, err := b.repo.BeginRollTx(ctx, userID)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// read only now: every earlier winner has committed its time already
	now := clock()

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "user_id", userID)
	} else {
		lastRoll, err := tx.GetLastRollTimeForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetCooldownTxFailed, err)
		}
		if status := Evaluate(now, lastRoll, d); status.OnCooldown {
			log.Debug(LogMsgRaceConditionDetected, "user_id", userID, "remaining", status.Remaining)
			return ErrOnCooldown{Remaining: status.Remaining}
		}
	}

	if err := tx.SetLastRollTime(ctx, userID, now); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}

	if err := fn(ctx, tx, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		b.invalidate(userID)
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	b.storeLastRoll(userID, &now)
	log.Debug(LogMsgCooldownEnforced, "user_id", userID)
	return nil
}

// GetLastRoll returns when the user last rolled
func (b *backend) GetLastRoll(ctx context.Context, userID string) (*time.Time, error) {
	lastRoll, err := b.repo.GetLastRollTime(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLastRollFailed, err)
	}
	return lastRoll, nil
}

func (b *backend) cachedLastRoll(userID string) (*time.Time, bool) {
	if b.cache == nil {
		return nil, false
	}
	return b.cache.Get(userID)
}

func (b *backend) storeLastRoll(userID string, at *time.Time) {
	if b.cache != nil {
		b.cache.Set(userID, at)
	}
}

func (b *backend) invalidate(userID string) {
	if b.cache != nil {
		b.cache.Invalidate(userID)
	}
}
