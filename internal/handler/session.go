package handler

import (
	"net/http"

	"github.com/osse101/RarityRoll_Go/internal/session"
)

// SessionResponse reports whether the caller carries a valid session
type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   string `json:"user_id,omitempty"`
}

// HandleCheckSession never fails; an absent or invalid session reports logged_in=false
// @Summary Session status
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /api/v1/session [get]
func HandleCheckSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := session.UserIDFromContext(r.Context())
		respondJSON(w, http.StatusOK, SessionResponse{LoggedIn: ok, UserID: userID})
	}
}

// HandleLogout clears the session cookie
// @Summary Logout
// @Tags session
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/logout [post]
func HandleLogout(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.ClearCookie(w)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
	}
}
