package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload
var ErrNilPayload = errors.New("event has no payload")

// DecodePayload returns an event payload as T. Payloads published on the
// MemoryBus are already T or *T. Raw JSON and generic maps, as found in a
// decoded envelope, are converted through encoding/json.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch p := payload.(type) {
	case nil:
		return out, ErrNilPayload
	case T:
		return p, nil
	case *T:
		if p == nil {
			return out, ErrNilPayload
		}
		return *p, nil
	case json.RawMessage:
		return out, unmarshalPayload(p, &out)
	case []byte:
		return out, unmarshalPayload(p, &out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgEncodePayload, err)
	}
	return out, unmarshalPayload(data, &out)
}

func unmarshalPayload[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %T: %w", ErrMsgDecodePayload, *out, err)
	}
	return nil
}
