// Package session verifies the opaque user identity handed to the roll
// service. Tokens are HS256 JWTs whose subject is the user id.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/RarityRoll_Go/internal/domain"
)

// Manager issues and verifies session tokens
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
}

// NewManager creates a Manager. ttl and cookieName fall back to defaults when zero.
func NewManager(secret string, ttl time.Duration, cookieName string) (*Manager, error) {
	if len(secret) < MinSecretLength {
		return nil, errors.New(ErrMsgSecretTooShort)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Manager{secret: []byte(secret), ttl: ttl, cookieName: cookieName}, nil
}

// CookieName is the cookie the token may be carried in
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Issue signs a token for userID valid from now for the configured TTL
func (m *Manager) Issue(userID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgSignFailed, err)
	}
	return token, nil
}

// Parse verifies a token and returns its user id. All failures wrap domain.ErrUnauthenticated.
func (m *Manager) Parse(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingToken)
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrUnauthenticated, ErrMsgInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingSubject)
	}
	return claims.Subject, nil
}

// FromRequest reads the token from the Authorization header, falling back to the cookie
func (m *Manager) FromRequest(r *http.Request) (string, error) {
	return m.Parse(m.tokenFromRequest(r))
}

func (m *Manager) tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, BearerPrefix))
	}
	if c, err := r.Cookie(m.cookieName); err == nil {
		return c.Value
	}
	return ""
}

// ClearCookie expires the session cookie
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

type ctxKey struct{}

// WithUserID stores the authenticated user id on ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
