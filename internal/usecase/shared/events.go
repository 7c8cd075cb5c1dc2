package shared

import (
	"time"

	"github.com/google/uuid"

	"mall-space-booking/internal/domain/reservation"
)

const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
)

type ReservationEvent struct {
	Type           string    `json:"type"`
	ReservationID  uuid.UUID `json:"reservationId"`
	SpaceID        string    `json:"spaceId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	TotalCost      int64     `json:"totalCost"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func NewCreatedEvent(r *reservation.Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		Type:          EventReservationCreated,
		ReservationID: r.ID(),
		SpaceID:       r.SpaceID(),
		Status:        r.Status().String(),
		TotalCost:     r.TotalCost().Minor(),
		OccurredAt:    at,
	}
}

func NewStatusChangedEvent(r *reservation.Reservation, previous reservation.Status, at time.Time) ReservationEvent {
	return ReservationEvent{
		Type:           EventReservationStatusChanged,
		ReservationID:  r.ID(),
		SpaceID:        r.SpaceID(),
		Status:         r.Status().String(),
		PreviousStatus: previous.String(),
		TotalCost:      r.TotalCost().Minor(),
		Reason:         r.CancelReason(),
		OccurredAt:     at,
	}
}
