package session

import "time"

const (
	// Issuer is stamped on and required of every session token
	Issuer = "rarity-roll"

	DefaultCookieName = "session"
	DefaultTTL        = 24 * time.Hour

	// MinSecretLength guards against trivially guessable HS256 keys
	MinSecretLength = 32

	BearerPrefix = "Bearer "
)

const (
	ErrMsgSecretTooShort = "session secret must be at least 32 bytes"
	ErrMsgMissingToken   = "missing session token"
	ErrMsgInvalidToken   = "invalid session token"
	ErrMsgMissingSubject = "session token has no subject"
	ErrMsgSignFailed     = "failed to sign session token"
)
