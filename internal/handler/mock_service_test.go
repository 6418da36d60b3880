package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RarityRoll_Go/internal/cooldown"
	"github.com/osse101/RarityRoll_Go/internal/domain"
)

// MockRollService mocks roll.Service
type MockRollService struct {
	mock.Mock
}

func (m *MockRollService) Roll(ctx context.Context, userID string, clock cooldown.Clock) (*domain.RollResult, error) {
	args := m.Called(ctx, userID, clock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RollResult), args.Error(1)
}

func (m *MockRollService) GetCooldown(ctx context.Context, userID string, now time.Time) (domain.CooldownStatus, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(domain.CooldownStatus), args.Error(1)
}

func (m *MockRollService) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

// MockPinger mocks Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
