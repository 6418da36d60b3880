// Package inventory reads a user's roll ledger.
package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/RarityRoll_Go/internal/domain"
)

// Repository is the read side of the ledger
type Repository interface {
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
}

// Service exposes a user's ledger
type Service interface {
	// GetInventory returns all entries rarest first, with the rarest rarity (0 when empty)
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
}

type service struct {
	repo Repository
}

// NewService creates a new inventory service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	entries, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
	}
	if entries == nil {
		entries = []domain.InventoryEntry{}
	}

	return &domain.Inventory{
		Entries: entries,
		Rarest:  Rarest(entries),
	}, nil
}

// SortEntries orders entries by rarity descending. Equal rarities are ordered
// by modifier name so the listing is stable across reads; no modifier sorts first.
func SortEntries(entries []domain.InventoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Rarity != entries[j].Rarity {
			return entries[i].Rarity > entries[j].Rarity
		}
		return entries[i].Modifier < entries[j].Modifier
	})
}

// Rarest returns the rarity of the first entry of a sorted ledger, or 0 when empty
func Rarest(entries []domain.InventoryEntry) int64 {
	if len(entries) == 0 {
		return 0
	}
	return entries[0].Rarity
}
