// Package messaging delivers reservation lifecycle events to downstream consumers.
package messaging

import (
	"context"
	"log/slog"

	"mall-space-booking/internal/usecase/shared"
)

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event shared.ReservationEvent) error {
	p.logger.InfoContext(ctx, "reservation event",
		"type", event.Type,
		"reservation_id", event.ReservationID.String(),
		"space_id", event.SpaceID,
		"status", event.Status,
		"previous_status", event.PreviousStatus,
		"total_cost", event.TotalCost,
	)
	return nil
}
