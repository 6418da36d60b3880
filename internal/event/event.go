package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string            `json:"version"`
	Type     Type              `json:"type"`
	Payload  interface{}       `json:"payload"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Roll event types
const (
	RollCompleted Type = "roll.completed"
	RollRejected  Type = "roll.rejected"
)

// RollCompletedPayloadV1 describes an admitted roll
type RollCompletedPayloadV1 struct {
	UserID     string `json:"user_id"`
	BaseRarity int64  `json:"base_rarity"`
	Multiplier int64  `json:"multiplier"`
	Rarity     int64  `json:"rarity"`
	Modifier   string `json:"modifier,omitempty"`
	Count      int    `json:"count"`
	Timestamp  int64  `json:"timestamp"`
}

// RollRejectedPayloadV1 describes a roll turned away by the cooldown gate
type RollRejectedPayloadV1 struct {
	UserID           string  `json:"user_id"`
	RemainingSeconds float64 `json:"remaining_seconds"`
	Timestamp        int64   `json:"timestamp"`
}

// NewRollCompletedEvent creates a roll completed event
func NewRollCompletedEvent(payload RollCompletedPayloadV1, at time.Time) Event {
	payload.Timestamp = at.Unix()
	return Event{
		Version: EventSchemaVersion,
		Type:    RollCompleted,
		Payload: payload,
	}
}

// NewRollRejectedEvent creates a roll rejected event
func NewRollRejectedEvent(userID string, remaining time.Duration, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RollRejected,
		Payload: RollRejectedPayloadV1{
			UserID:           userID,
			RemainingSeconds: remaining.Seconds(),
			Timestamp:        at.Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of event.Type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrFmtHandlerErrors, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
