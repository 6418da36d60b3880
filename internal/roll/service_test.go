package roll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RarityRoll_Go/internal/cooldown"
	"github.com/osse101/RarityRoll_Go/internal/database/memory"
	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/event"
	"github.com/osse101/RarityRoll_Go/internal/inventory"
	"github.com/osse101/RarityRoll_Go/internal/rarity"
	"github.com/osse101/RarityRoll_Go/internal/roll"
	"github.com/osse101/RarityRoll_Go/internal/rng"
)

func at(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func clockAt(sec int64) cooldown.Clock {
	return cooldown.FixedClock(at(sec))
}

type fixture struct {
	store  *memory.Store
	bus    *event.MemoryBus
	events []event.Event
}

func newService(t *testing.T, src rng.Source) (roll.Service, *fixture) {
	t.Helper()
	f := &fixture{
		store: memory.NewStore(),
		bus:   event.NewMemoryBus(),
	}
	record := func(ctx context.Context, e event.Event) error {
		f.events = append(f.events, e)
		return nil
	}
	f.bus.Subscribe(event.RollCompleted, record)
	f.bus.Subscribe(event.RollRejected, record)

	svc := roll.NewService(
		cooldown.NewService(f.store, cooldown.Config{}),
		inventory.NewService(f.store),
		src,
		f.bus,
	)
	return svc, f
}

func TestRoll_EndToEndExample(t *testing.T) {
	svc, f := newService(t, rng.ForRarity(5, 0.5))
	ctx := context.Background()

	result, err := svc.Roll(ctx, "user1", clockAt(1000))
	require.NoError(t, err)
	assert.Equal(t, &domain.RollResult{
		BaseRarity: 5,
		Multiplier: 1,
		Rarity:     5,
		Modifier:   domain.ModifierNone,
		Message:    "You got a 1 in 5!",
	}, result)

	inv, err := svc.GetInventory(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryEntry{{Rarity: 5, Modifier: domain.ModifierNone, Count: 1}}, inv.Entries)
	assert.Equal(t, int64(5), inv.Rarest)

	_, err = svc.Roll(ctx, "user1", clockAt(1005))
	require.ErrorIs(t, err, domain.ErrOnCooldown)
	var onCooldown cooldown.ErrOnCooldown
	require.ErrorAs(t, err, &onCooldown)
	assert.Equal(t, 5*time.Second, onCooldown.Remaining)

	status, err := svc.GetCooldown(ctx, "user1", at(1005))
	require.NoError(t, err)
	assert.Equal(t, domain.CooldownStatus{OnCooldown: true, Remaining: 5 * time.Second}, status)

	inv, err = svc.GetInventory(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Entries[0].Count, "rejected roll has no side effects")

	require.Len(t, f.events, 2)
	assert.Equal(t, event.RollCompleted, f.events[0].Type)
	assert.Equal(t, event.RollRejected, f.events[1].Type)
}

func TestRoll_ModifierMultipliesExactly(t *testing.T) {
	tests := []struct {
		name         string
		base         int64
		draw         float64
		wantModifier string
		wantRarity   int64
		wantMessage  string
	}{
		{"holographic", 5, 0.05, rarity.ModifierHolographic, 50, "You got a Holographic 1 in 50!"},
		{"polychrome", 3, 0.005, rarity.ModifierPolychrome, 300, "You got a Polychrome 1 in 300!"},
		{"negative", 2, 0.0005, rarity.ModifierNegative, 2000, "You got a Negative 1 in 2000!"},
		{"developer", 7, 0.000001, rarity.ModifierDeveloper, 700000, "You got a Developer 1 in 700000!"},
		{"none", 9, 0.1, domain.ModifierNone, 9, "You got a 1 in 9!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, rng.ForRarity(tt.base, tt.draw))

			result, err := svc.Roll(context.Background(), "user1", clockAt(1000))
			require.NoError(t, err)
			assert.Equal(t, tt.base, result.BaseRarity)
			assert.Equal(t, tt.wantModifier, result.Modifier)
			assert.Equal(t, tt.wantRarity, result.Rarity)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, result.HasModifier(), result.Gradient != "")
		})
	}
}

func TestRoll_SameRarityDifferentModifierAreDistinct(t *testing.T) {
	// base 5 + Holographic and base 50 + none both have true rarity 50
	src := rng.NewScripted(
		append(rng.RarityWalk(5), rng.RarityWalk(50)...),
		[]float64{0.05, 0.5},
	)
	svc, _ := newService(t, src)
	ctx := context.Background()

	_, err := svc.Roll(ctx, "user1", clockAt(1000))
	require.NoError(t, err)
	_, err = svc.Roll(ctx, "user1", clockAt(1010))
	require.NoError(t, err)

	inv, err := svc.GetInventory(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryEntry{
		{Rarity: 50, Modifier: domain.ModifierNone, Count: 1},
		{Rarity: 50, Modifier: rarity.ModifierHolographic, Count: 1},
	}, inv.Entries)
}

func TestRoll_IdenticalRollsIncrement(t *testing.T) {
	src := rng.NewScripted(
		append(rng.RarityWalk(3), rng.RarityWalk(3)...),
		[]float64{0.5, 0.5},
	)
	svc, _ := newService(t, src)
	ctx := context.Background()

	_, err := svc.Roll(ctx, "user1", clockAt(1000))
	require.NoError(t, err)
	_, err = svc.Roll(ctx, "user1", clockAt(1010))
	require.NoError(t, err)

	inv, err := svc.GetInventory(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, inv.Entries, 1)
	assert.Equal(t, 2, inv.Entries[0].Count)
}

func TestRoll_StorageFailureRollsBack(t *testing.T) {
	svc, f := newService(t, rng.ForRarity(5, 0.5))
	ctx := context.Background()

	f.store.FailCommits(errors.New("connection reset"))
	_, err := svc.Roll(ctx, "user1", clockAt(1000))
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, domain.ErrOnCooldown)

	f.store.FailCommits(nil)

	status, err := svc.GetCooldown(ctx, "user1", at(1000))
	require.NoError(t, err)
	assert.False(t, status.OnCooldown, "failed roll must not start a cooldown")

	inv, err := svc.GetInventory(ctx, "user1")
	require.NoError(t, err)
	assert.Empty(t, inv.Entries)
	assert.Equal(t, int64(0), inv.Rarest)
	assert.Empty(t, f.events)
}

func TestRoll_RequiresUser(t *testing.T) {
	svc, _ := newService(t, rng.ForRarity(2, 0.5))
	ctx := context.Background()

	_, err := svc.Roll(ctx, "", clockAt(1000))
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.GetCooldown(ctx, "", at(1000))
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.GetInventory(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRoll_FirstStatusIsReady(t *testing.T) {
	svc, _ := newService(t, nil)

	status, err := svc.GetCooldown(context.Background(), "newcomer", at(1000))
	require.NoError(t, err)
	assert.Equal(t, domain.CooldownStatus{}, status)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "You got a 1 in 2!", roll.Message(domain.ModifierNone, 2))
	assert.Equal(t, "You got a Developer 1 in 100000100000!", roll.Message(rarity.ModifierDeveloper, 100_000_100_000))
}

func TestRoll_LaterArrivalQueuedBehindWinnerIsRejected(t *testing.T) {
	svc, f := newService(t, rng.ForRarity(5, 0.5))
	ctx := context.Background()

	_, err := svc.Roll(ctx, "user1", clockAt(1000))
	require.NoError(t, err)

	// a request that started before the winner but got the lock after it
	// reads the clock under the lock, so the winner's roll is just behind it
	_, err = svc.Roll(ctx, "user1", cooldown.FixedClock(at(1000).Add(time.Millisecond)))
	require.ErrorIs(t, err, domain.ErrOnCooldown)

	inv, err := svc.GetInventory(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Entries[0].Count)
	require.Len(t, f.events, 2)
}

func TestRoll_CancelledContextIsNotStorageFailure(t *testing.T) {
	svc, f := newService(t, rng.ForRarity(5, 0.5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Roll(ctx, "user1", clockAt(1000))
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Empty(t, f.events)

	_, err = svc.GetInventory(ctx, "user1")
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
}
