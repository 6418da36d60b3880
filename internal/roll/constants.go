package roll

// Result messages
const (
	MsgFmtRollWithModifier = "You got a %s 1 in %d!"
	MsgFmtRoll             = "You got a 1 in %d!"
)

// Error Message Constants
const (
	ErrMsgRollFailed        = "roll failed"
	ErrMsgGetCooldownFailed = "failed to get cooldown"
)

// Log Message Constants
const (
	LogMsgRollCompleted  = "Roll completed"
	LogMsgRollRejected   = "Roll rejected by cooldown"
	LogMsgRollFailed     = "Roll failed, nothing committed"
	LogMsgRollCanceled   = "Roll abandoned, request cancelled"
	LogMsgPublishFailed  = "Failed to publish roll event"
	LogMsgCeilingReached = "Rarity walk hit the safety ceiling"
)
