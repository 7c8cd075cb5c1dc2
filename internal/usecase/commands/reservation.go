package commands

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/domain/space"
	"mall-space-booking/internal/infra"
	"mall-space-booking/internal/pkg/clock"
	"mall-space-booking/internal/pkg/errs"
	"mall-space-booking/internal/usecase/shared"
)

type ReserveInput struct {
	SpaceID          string
	Category         space.Category
	StartDate        time.Time
	EndDate          time.Time
	StartTime        *reservation.TimeOfDay
	EndTime          *reservation.TimeOfDay
	UnitsBooked      int64
	SizeInSquareFeet int64
	DiscountPercent  decimal.Decimal
	TenantID         *string
	Note             string
	DiscountReason   string
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*reservation.Reservation, error)
	SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	store     shared.ReservationStore
	locker    shared.SpaceLocker
	pricer    Pricer
	factory   *reservation.Factory
	publisher shared.EventPublisher
	metrics   shared.LedgerMetrics
	clock     clock.Clock
}

func NewReservationCommands(
	store shared.ReservationStore,
	locker shared.SpaceLocker,
	pricer Pricer,
	factory *reservation.Factory,
	publisher shared.EventPublisher,
	metrics shared.LedgerMetrics,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		store:     store,
		locker:    locker,
		pricer:    pricer,
		factory:   factory,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
	}
}

// Reserve prices the request, then checks for conflicts and inserts under the space lock.
// Nothing is written when any step fails.
func (c *reservationCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*reservation.Reservation, error) {
	priced, err := c.pricer.Price(pricing.Request{
		Category:         in.Category,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		UnitsBooked:      in.UnitsBooked,
		SizeInSquareFeet: in.SizeInSquareFeet,
		DiscountPercent:  in.DiscountPercent,
	})
	if err != nil {
		c.metrics.ReservationAttempt(shared.OutcomeRejected)
		return nil, err
	}

	interval, err := reservation.NewInterval(in.StartDate, in.EndDate, in.StartTime, in.EndTime)
	if err != nil {
		c.metrics.ReservationAttempt(shared.OutcomeRejected)
		return nil, err
	}

	candidate, err := c.factory.CreateReservation(in.SpaceID, in.Category, interval, priced, reservation.Details{
		TenantID:       in.TenantID,
		Note:           reservation.NewNote(in.Note),
		DiscountReason: in.DiscountReason,
	})
	if err != nil {
		c.metrics.ReservationAttempt(shared.OutcomeRejected)
		return nil, err
	}

	err = c.locker.WithLock(ctx, candidate.SpaceID(), func(ctx context.Context) error {
		existing, err := c.store.ListActiveBySpace(ctx, candidate.SpaceID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if blocking := reservation.FindConflict(existing, candidate); blocking != nil {
			return &reservation.ConflictError{SpaceID: candidate.SpaceID(), ConflictingID: blocking.ID()}
		}
		if err := c.store.Create(ctx, candidate); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, reservation.ErrConflictingBooking) {
			c.metrics.ReservationAttempt(shared.OutcomeConflict)
			slog.InfoContext(ctx, "reservation rejected by conflict",
				"space_id", candidate.SpaceID(),
				"interval", interval.String(),
				"error", err.Error())
			return nil, err
		}
		c.metrics.ReservationAttempt(shared.OutcomeError)
		slog.ErrorContext(ctx, "reservation failed", "space_id", candidate.SpaceID(), "error", err.Error())
		return nil, err
	}

	c.metrics.ReservationAttempt(shared.OutcomeCreated)
	slog.InfoContext(ctx, "reservation created",
		"reservation_id", candidate.ID(),
		"space_id", candidate.SpaceID(),
		"interval", interval.String(),
		"total_cost", candidate.TotalCost().Minor())

	c.publish(ctx, shared.NewCreatedEvent(candidate, c.clock.Now()))
	return candidate, nil
}

func (c *reservationCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error) {
	return c.transition(ctx, id, func(r *reservation.Reservation, now time.Time) error {
		return r.TransitionTo(status, now)
	})
}

// Cancel is SetStatus(Cancelled) that also keeps the reason.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, reason string) (*reservation.Reservation, error) {
	return c.transition(ctx, id, func(r *reservation.Reservation, now time.Time) error {
		return r.Cancel(reason, now)
	})
}

func (c *reservationCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	apply func(r *reservation.Reservation, now time.Time) error,
) (*reservation.Reservation, error) {
	current, err := c.find(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		updated  *reservation.Reservation
		previous reservation.Status
	)
	err = c.locker.WithLock(ctx, current.SpaceID(), func(ctx context.Context) error {
		// Re-read under the lock; the status may have moved since the first lookup.
		fresh, err := c.find(ctx, id)
		if err != nil {
			return err
		}
		previous = fresh.Status()
		if err := apply(fresh, c.clock.Now()); err != nil {
			return err
		}
		if err := c.store.Update(ctx, fresh); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.StatusChanged(previous, updated.Status())
	slog.InfoContext(ctx, "reservation status changed",
		"reservation_id", updated.ID(),
		"from", previous.String(),
		"to", updated.Status().String())

	c.publish(ctx, shared.NewStatusChangedEvent(updated, previous, c.clock.Now()))
	return updated, nil
}

func (c *reservationCommandsImpl) find(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := c.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return r, nil
}

// publish never fails the command; the ledger write has already happened.
func (c *reservationCommandsImpl) publish(ctx context.Context, event shared.ReservationEvent) {
	if err := c.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish reservation event",
			"type", event.Type,
			"reservation_id", event.ReservationID,
			"error", err.Error())
	}
}
