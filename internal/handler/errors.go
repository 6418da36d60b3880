package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/logger"
)

// Client-facing messages. They never carry internal error details.
const (
	ErrMsgNotAuthenticated     = "Not authenticated"
	ErrMsgCooldownActive       = "Cooldown active"
	ErrMsgUnavailableError     = "Service temporarily unavailable. Please try again later."
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgInvalidRequestError  = "Invalid request. Please check your inputs."
	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgDatabaseDisconnected = "database connection failed"
	ErrMsgRequestCancelled     = "Request cancelled"
)

// StatusClientClosedRequest is logged and written when the client went away
// before the response was ready. Nothing reads the body.
const StatusClientClosedRequest = 499

// Success messages
const (
	MsgLoggedOut = "Logged out"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a safe message
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrMsgRequestCancelled
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgNotAuthenticated
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgCooldownActive
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs err, reports server-side failures to Sentry, and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())

	if status == StatusClientClosedRequest {
		log.Debug("Request cancelled by client", "path", r.URL.Path)
		w.WriteHeader(status)
		return
	}

	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "path", r.URL.Path, "status", status, "error", err)
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
	} else {
		log.Debug("Request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	respondError(w, status, msg)
}
