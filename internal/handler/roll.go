package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/osse101/RarityRoll_Go/internal/cooldown"
	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/roll"
	"github.com/osse101/RarityRoll_Go/internal/session"
)

// RollResponse is the result of an admitted roll. Modifier and gradient are
// null for a roll without a modifier.
type RollResponse struct {
	Rarity   int64   `json:"rarity"`
	Modifier *string `json:"modifier"`
	Gradient *string `json:"gradient"`
	Message  string  `json:"message"`
}

// CooldownErrorResponse is returned with 429. Remaining is in seconds.
type CooldownErrorResponse struct {
	Error     string  `json:"error"`
	Remaining float64 `json:"remaining"`
}

// CooldownResponse reports the gate state. Remaining is in seconds.
type CooldownResponse struct {
	OnCooldown bool    `json:"on_cooldown"`
	Remaining  float64 `json:"remaining"`
}

// HandleRoll performs a roll for the session user
// @Summary Roll
// @Description Rolls a rarity and modifier, adds it to the inventory and starts the cooldown
// @Tags roll
// @Produce json
// @Security Session
// @Success 200 {object} RollResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} CooldownErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/roll [post]
func HandleRoll(svc roll.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := session.UserIDFromContext(r.Context())
		if !ok {
			RespondUnauthenticated(w)
			return
		}

		result, err := svc.Roll(r.Context(), userID, time.Now)
		if err != nil {
			var onCooldown cooldown.ErrOnCooldown
			if errors.As(err, &onCooldown) {
				respondJSON(w, http.StatusTooManyRequests, CooldownErrorResponse{
					Error:     ErrMsgCooldownActive,
					Remaining: onCooldown.Remaining.Seconds(),
				})
				return
			}
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, newRollResponse(result))
	}
}

func newRollResponse(result *domain.RollResult) RollResponse {
	resp := RollResponse{
		Rarity:  result.Rarity,
		Message: result.Message,
	}
	if result.HasModifier() {
		modifier, gradient := result.Modifier, result.Gradient
		resp.Modifier = &modifier
		resp.Gradient = &gradient
	}
	return resp
}

// HandleGetCooldown reports whether the session user may roll
// @Summary Cooldown status
// @Tags roll
// @Produce json
// @Security Session
// @Success 200 {object} CooldownResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/cooldown [get]
func HandleGetCooldown(svc roll.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := session.UserIDFromContext(r.Context())
		if !ok {
			RespondUnauthenticated(w)
			return
		}

		status, err := svc.GetCooldown(r.Context(), userID, time.Now())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, CooldownResponse{
			OnCooldown: status.OnCooldown,
			Remaining:  status.Remaining.Seconds(),
		})
	}
}
