package metrics

import (
	"context"

	"github.com/osse101/RarityRoll_Go/internal/event"
	"github.com/osse101/RarityRoll_Go/internal/logger"
)

// EventMetricsCollector subscribes to roll events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the roll events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.RollCompleted, e.HandleEvent)
	bus.Subscribe(event.RollRejected, e.HandleEvent)
}

// HandleEvent updates metrics for one event. Malformed payloads are logged, not returned.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RollCompleted:
		p, err := event.DecodePayload[event.RollCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		modifier := p.Modifier
		if modifier == "" {
			modifier = LabelValueNoModifier
		}
		RollsTotal.WithLabelValues(modifier).Inc()
		RollRarity.Observe(float64(p.Rarity))

	case event.RollRejected:
		CooldownRejections.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
