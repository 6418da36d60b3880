package cooldown

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin roll transaction: %w"
	ErrMsgGetCooldownTxFailed     = "failed to get last roll time within transaction: %w"
	ErrMsgUpdateCooldownFailed    = "failed to update last roll time: %w"
	ErrMsgCommitTransactionFailed = "failed to commit roll transaction: %w"
	ErrMsgGetLastRollFailed       = "failed to get last roll time: %w"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	LogMsgDevModeBypass         = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgRaceConditionDetected = "Race condition detected - concurrent roll on cooldown"
	LogMsgCooldownActive        = "Roll rejected, cooldown active"
	LogMsgCooldownEnforced      = "Cooldown enforced successfully"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	ErrFmtCooldownRemaining = "roll on cooldown: %.3fs remaining"
)
