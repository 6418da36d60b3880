package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// ErrFmtHandlerErrors reports subscriber failures for one published event
const ErrFmtHandlerErrors = "encountered %d errors while handling event %s: %v"

// Payload decoding
const (
	ErrMsgEncodePayload = "re-encode event payload"
	ErrMsgDecodePayload = "decode event payload into"
)
