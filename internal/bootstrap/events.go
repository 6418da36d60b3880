package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RarityRoll_Go/internal/event"
	"github.com/osse101/RarityRoll_Go/internal/logger"
	"github.com/osse101/RarityRoll_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus and subscribes the metrics
// collector and the rejection logger to it
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.RollRejected, logRejectedRoll)

	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

func logRejectedRoll(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RollRejectedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgRollRejected,
		"user_id", payload.UserID,
		"remaining_seconds", payload.RemainingSeconds)
	return nil
}
