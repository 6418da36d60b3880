package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgUnauthenticated = "not authenticated"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Cooldown errors
	ErrMsgOnCooldown = "cooldown active"

	// Database/System errors
	ErrMsgStorageUnavailable = "storage unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %w", domain.ErrXxx, cause) for additional context.
var (
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)

	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// ErrOnCooldown is matched by cooldown.ErrOnCooldown via errors.Is
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// ErrStorageUnavailable marks a roll that did not happen because the
	// transaction could not be completed. Nothing was committed.
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
