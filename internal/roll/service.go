// Package roll composes the rarity sampler and modifier overlay behind the
// cooldown gate and records results in the inventory ledger.
package roll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/RarityRoll_Go/internal/cooldown"
	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/event"
	"github.com/osse101/RarityRoll_Go/internal/inventory"
	"github.com/osse101/RarityRoll_Go/internal/logger"
	"github.com/osse101/RarityRoll_Go/internal/metrics"
	"github.com/osse101/RarityRoll_Go/internal/rarity"
	"github.com/osse101/RarityRoll_Go/internal/repository"
	"github.com/osse101/RarityRoll_Go/internal/rng"
)

// Service is the roll engine
type Service interface {
	// Roll performs one roll for userID. clock is read once the user's roll
	// lock is held. Returns an error matching domain.ErrOnCooldown (as
	// cooldown.ErrOnCooldown) while cooling, or domain.ErrStorageUnavailable
	// when nothing could be committed. A cancelled ctx is returned as is.
	Roll(ctx context.Context, userID string, clock cooldown.Clock) (*domain.RollResult, error)

	// GetCooldown reports the gate state at now
	GetCooldown(ctx context.Context, userID string, now time.Time) (domain.CooldownStatus, error)

	// GetInventory returns the user's ledger rarest first
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
}

type service struct {
	cooldownSvc  cooldown.Service
	inventorySvc inventory.Service
	src          rng.Source
	bus          event.Bus
}

// NewService creates the roll engine. A nil src uses rng.Default(); a nil bus disables events.
func NewService(cooldownSvc cooldown.Service, inventorySvc inventory.Service, src rng.Source, bus event.Bus) Service {
	if src == nil {
		src = rng.Default()
	}
	return &service{
		cooldownSvc:  cooldownSvc,
		inventorySvc: inventorySvc,
		src:          src,
		bus:          bus,
	}
}

func (s *service) Roll(ctx context.Context, userID string, clock cooldown.Clock) (*domain.RollResult, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	log := logger.FromContext(ctx).With(logger.AttrKeyUserID, userID)

	var (
		result *domain.RollResult
		count  int
		rolled time.Time
	)
	err := s.cooldownSvc.EnforceCooldown(ctx, userID, clock, func(ctx context.Context, tx repository.RollTx, now time.Time) error {
		r := s.draw()

		n, err := tx.UpsertInventory(ctx, userID, r.Rarity, r.Modifier)
		if err != nil {
			return err
		}
		result, count, rolled = r, n, now
		return nil
	})

	if err != nil {
		var onCooldown cooldown.ErrOnCooldown
		if errors.As(err, &onCooldown) {
			log.Debug(LogMsgRollRejected, "remaining", onCooldown.Remaining)
			s.publish(ctx, event.NewRollRejectedEvent(userID, onCooldown.Remaining, clock()))
			return nil, onCooldown
		}
		if errors.Is(err, context.Canceled) {
			log.Debug(LogMsgRollCanceled)
			return nil, err
		}

		metrics.StorageFailures.Inc()
		log.Error(LogMsgRollFailed, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgRollFailed, err)
	}

	log.Info(LogMsgRollCompleted,
		"rarity", result.Rarity, "modifier", result.Modifier, "count", count)
	s.publish(ctx, event.NewRollCompletedEvent(event.RollCompletedPayloadV1{
		UserID:     userID,
		BaseRarity: result.BaseRarity,
		Multiplier: result.Multiplier,
		Rarity:     result.Rarity,
		Modifier:   result.Modifier,
		Count:      count,
	}, rolled))

	return result, nil
}

// draw samples base rarity and modifier independently and composes them
func (s *service) draw() *domain.RollResult {
	base := rarity.Sample(s.src)
	if base > rarity.SafetyCeiling {
		logger.Warn(LogMsgCeilingReached, "rarity", base)
	}
	mod := rarity.Draw(s.src)

	r := &domain.RollResult{
		BaseRarity: base,
		Multiplier: mod.Multiplier,
		Rarity:     mod.Apply(base),
		Modifier:   mod.Name,
		Gradient:   mod.Gradient,
	}
	r.Message = Message(r.Modifier, r.Rarity)
	return r
}

// Message renders the user-facing result line
func Message(modifier string, rarity int64) string {
	if modifier == domain.ModifierNone {
		return fmt.Sprintf(MsgFmtRoll, rarity)
	}
	return fmt.Sprintf(MsgFmtRollWithModifier, modifier, rarity)
}

func (s *service) GetCooldown(ctx context.Context, userID string, now time.Time) (domain.CooldownStatus, error) {
	if userID == "" {
		return domain.CooldownStatus{}, domain.ErrUnauthenticated
	}
	status, err := s.cooldownSvc.CheckCooldown(ctx, userID, now)
	if errors.Is(err, context.Canceled) {
		return domain.CooldownStatus{}, err
	}
	if err != nil {
		return domain.CooldownStatus{}, fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgGetCooldownFailed, err)
	}
	return status, nil
}

func (s *service) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	inv, err := s.inventorySvc.GetInventory(ctx, userID)
	if errors.Is(err, context.Canceled) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return inv, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
