package queries

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/infra"
	"mall-space-booking/internal/pkg/errs"
	"mall-space-booking/internal/usecase/shared"
)

// ConflictsInput asks which active reservations overlap a window on one space.
type ConflictsInput struct {
	SpaceID   string
	StartDate time.Time
	EndDate   time.Time
	StartTime *reservation.TimeOfDay
	EndTime   *reservation.TimeOfDay
}

type ReservationQueries interface {
	Conflicts(ctx context.Context, in ConflictsInput) ([]*reservation.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	List(ctx context.Context, filter shared.ListFilter) ([]*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	reader shared.ReservationReader
}

func NewReservationQueries(reader shared.ReservationReader) ReservationQueries {
	return &reservationQueriesImpl{reader: reader}
}

// Conflicts is advisory and takes no lock; Reserve stays authoritative.
func (q *reservationQueriesImpl) Conflicts(ctx context.Context, in ConflictsInput) ([]*reservation.Reservation, error) {
	if in.SpaceID == "" {
		return nil, reservation.ErrEmptySpaceID
	}
	iv, err := reservation.NewInterval(in.StartDate, in.EndDate, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	active, err := q.reader.ListActiveBySpace(ctx, in.SpaceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reservation.Overlapping(active, iv), nil
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return r, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter shared.ListFilter) ([]*reservation.Reservation, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, reservation.ErrInvalidInterval
	}
	rs, err := q.reader.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rs, nil
}
