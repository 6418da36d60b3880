package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/rarity"
)

func TestHandleGetInventory(t *testing.T) {
	t.Run("populated", func(t *testing.T) {
		svc := &MockRollService{}
		svc.On("GetInventory", mock.Anything, "user1").Return(&domain.Inventory{
			Entries: []domain.InventoryEntry{
				{Rarity: 50, Modifier: rarity.ModifierHolographic, Count: 1},
				{Rarity: 50, Modifier: domain.ModifierNone, Count: 3},
				{Rarity: 2, Modifier: domain.ModifierNone, Count: 7},
			},
			Rarest: 50,
		}, nil)

		w := httptest.NewRecorder()
		HandleGetInventory(svc).ServeHTTP(w, authed(http.MethodGet, "/api/v1/inventory", "user1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{
			"inventory": [
				{"rarity": 50, "modifier": {"name": "Holographic", "gradient": %q}, "count": 1},
				{"rarity": 50, "modifier": null, "count": 3},
				{"rarity": 2, "modifier": null, "count": 7}
			],
			"rarest": 50
		}`, rarity.GradientHolographic), w.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		svc := &MockRollService{}
		svc.On("GetInventory", mock.Anything, "user1").Return(&domain.Inventory{}, nil)

		w := httptest.NewRecorder()
		HandleGetInventory(svc).ServeHTTP(w, authed(http.MethodGet, "/api/v1/inventory", "user1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"inventory":[],"rarest":0}`, w.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := &MockRollService{}
		svc.On("GetInventory", mock.Anything, "user1").Return(nil, domain.ErrStorageUnavailable)

		w := httptest.NewRecorder()
		HandleGetInventory(svc).ServeHTTP(w, authed(http.MethodGet, "/api/v1/inventory", "user1"))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "storage unavailable", "internal details stay internal")
	})
}
