package handler

import (
	"net/http"

	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/rarity"
	"github.com/osse101/RarityRoll_Go/internal/roll"
	"github.com/osse101/RarityRoll_Go/internal/session"
)

// ModifierView is the display form of a stored modifier
type ModifierView struct {
	Name     string `json:"name"`
	Gradient string `json:"gradient"`
}

// InventoryEntryView is one ledger row. Modifier is null when absent.
type InventoryEntryView struct {
	Rarity   int64         `json:"rarity"`
	Modifier *ModifierView `json:"modifier"`
	Count    int           `json:"count"`
}

// InventoryResponse lists the ledger rarest first. Rarest is 0 when empty.
type InventoryResponse struct {
	Inventory []InventoryEntryView `json:"inventory"`
	Rarest    int64                `json:"rarest"`
}

// HandleGetInventory returns the session user's ledger
// @Summary Inventory
// @Tags roll
// @Produce json
// @Security Session
// @Success 200 {object} InventoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/inventory [get]
func HandleGetInventory(svc roll.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := session.UserIDFromContext(r.Context())
		if !ok {
			RespondUnauthenticated(w)
			return
		}

		inv, err := svc.GetInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, newInventoryResponse(inv))
	}
}

func newInventoryResponse(inv *domain.Inventory) InventoryResponse {
	views := make([]InventoryEntryView, 0, len(inv.Entries))
	for _, e := range inv.Entries {
		view := InventoryEntryView{Rarity: e.Rarity, Count: e.Count}
		if e.HasModifier() {
			// unknown names still display, just without a gradient
			m, _ := rarity.Lookup(e.Modifier)
			view.Modifier = &ModifierView{Name: e.Modifier, Gradient: m.Gradient}
		}
		views = append(views, view)
	}
	return InventoryResponse{Inventory: views, Rarest: inv.Rarest}
}
