package shared

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"

	"github.com/google/uuid"

	"mall-space-booking/internal/domain/reservation"
)

// ReservationReader is the read side of the ledger store.
type ReservationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListActiveBySpace(ctx context.Context, spaceID string) ([]*reservation.Reservation, error)
	List(ctx context.Context, filter ListFilter) ([]*reservation.Reservation, error)
}

// ReservationStore persists reservations. Writers must hold the space lock.
type ReservationStore interface {
	ReservationReader
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
}

// SpaceLocker serializes writers per space. Different spaces never block each other.
type SpaceLocker interface {
	WithLock(ctx context.Context, spaceID string, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

// Reservation outcomes reported to LedgerMetrics.
const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type LedgerMetrics interface {
	ReservationAttempt(outcome string)
	StatusChanged(from, to reservation.Status)
	Quote(outcome string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ReservationAttempt(string)                           {}
func (NopMetrics) StatusChanged(reservation.Status, reservation.Status) {}
func (NopMetrics) Quote(string)                                        {}
