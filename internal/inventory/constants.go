package inventory

// Error Messages
const (
	ErrMsgGetInventoryFailed = "failed to get inventory"
)
