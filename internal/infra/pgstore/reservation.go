package pgstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/domain/space"
	"mall-space-booking/internal/infra"
	"mall-space-booking/internal/pkg/errs"
	"mall-space-booking/internal/pkg/pgconv"
	"mall-space-booking/internal/usecase/shared"
)

const reservationColumns = `id, space_id, category, start_date, end_date, start_minute, end_minute, status,
	classification, rent_unit, price_per_unit, units_booked, subtotal, discount_percent::text,
	discount_amount, total_cost, tenant_id, note, discount_reason, cancel_reason, created_at, updated_at`

const insertReservationSQL = `
INSERT INTO reservations (
	id, space_id, category, start_date, end_date, start_minute, end_minute, status,
	classification, rent_unit, price_per_unit, units_booked, subtotal, discount_percent,
	discount_amount, total_cost, tenant_id, note, discount_reason, cancel_reason, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14::numeric, $15, $16, $17, $18, $19, $20, $21, $22)`

// Only the mutable columns; the interval and price snapshot are fixed at creation.
const updateReservationSQL = `
UPDATE reservations
SET status = $2, cancel_reason = $3, updated_at = $4
WHERE id = $1`

const listReservationsSQL = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE ($1::text = '' OR space_id = $1)
  AND ($2::text IS NULL OR status = $2)
  AND ($3::date IS NULL OR start_date <= $3)
  AND ($4::date IS NULL OR (CASE WHEN end_date = start_date THEN start_date ELSE end_date - 1 END) >= $4)
ORDER BY start_date, created_at`

type ReservationStore struct {
	pool *pgxpool.Pool
}

func NewReservationStore(pool *pgxpool.Pool) *ReservationStore {
	return &ReservationStore{pool: pool}
}

func (s *ReservationStore) Create(ctx context.Context, r *reservation.Reservation) error {
	args := insertArgs(r)
	err := runInTx(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertReservationSQL, args...)
		return err
	})
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "reservation already exists", err)
		}
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create reservation", err)
	}
	return nil
}

func (s *ReservationStore) Update(ctx context.Context, r *reservation.Reservation) error {
	var affected int64
	err := runInTx(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateReservationSQL,
			pgconv.UUIDToPgtype(r.ID()),
			r.Status().String(),
			r.CancelReason(),
			pgconv.TimeToPgtype(r.UpdatedAt()),
		)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update reservation", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (s *ReservationStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, pgconv.UUIDToPgtype(id))
	r, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find reservation", err)
	}
	return r, nil
}

func (s *ReservationStore) ListActiveBySpace(ctx context.Context, spaceID string) ([]*reservation.Reservation, error) {
	active := reservation.ActiveStatuses()
	statuses := make([]string, 0, len(active))
	for _, st := range active {
		statuses = append(statuses, st.String())
	}

	rows, err := s.pool.Query(ctx, `
SELECT `+reservationColumns+`
FROM reservations
WHERE space_id = $1 AND status = ANY($2)
ORDER BY start_date, created_at`, spaceID, statuses)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list active reservations", err)
	}
	return collect(rows)
}

func (s *ReservationStore) List(ctx context.Context, filter shared.ListFilter) ([]*reservation.Reservation, error) {
	status := pgtype.Text{}
	if filter.Status != nil {
		status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}
	to, from := pgtype.Date{}, pgtype.Date{}
	if filter.To != nil {
		to = pgconv.DateToPgtype(*filter.To)
	}
	if filter.From != nil {
		from = pgconv.DateToPgtype(*filter.From)
	}

	rows, err := s.pool.Query(ctx, listReservationsSQL, filter.SpaceID, status, to, from)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list reservations", err)
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*reservation.Reservation, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*reservation.Reservation, error) {
		return scanReservation(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read reservations", err)
	}
	return out, nil
}

func insertArgs(r *reservation.Reservation) []any {
	iv := r.Interval()
	var startMinute, endMinute *int
	if st, et, ok := iv.TimeRange(); ok {
		sm, em := st.Minutes(), et.Minutes()
		startMinute, endMinute = &sm, &em
	}
	p := r.Price()

	return []any{
		pgconv.UUIDToPgtype(r.ID()),
		r.SpaceID(),
		r.Category().String(),
		pgconv.DateToPgtype(iv.StartDate()),
		pgconv.DateToPgtype(iv.EndDate()),
		pgconv.Int4PtrToPgtype(startMinute),
		pgconv.Int4PtrToPgtype(endMinute),
		r.Status().String(),
		p.Classification.String(),
		p.Unit.String(),
		p.PricePerUnit.Minor(),
		p.UnitsBooked,
		p.Subtotal.Minor(),
		p.DiscountPercent.String(),
		p.DiscountAmount.Minor(),
		p.TotalCost.Minor(),
		pgconv.StringPtrToPgtype(r.TenantID()),
		r.Note().String(),
		r.DiscountReason(),
		r.CancelReason(),
		pgconv.TimeToPgtype(r.CreatedAt()),
		pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id                               pgtype.UUID
		spaceID, category, status        string
		classification, unit             string
		startDate, endDate               pgtype.Date
		startMinute, endMinute           pgtype.Int4
		pricePerUnit, unitsBooked        int64
		subtotal, discountAmount, total  int64
		discountPercent                  string
		tenantID                         pgtype.Text
		note, discountReason, cancelNote string
		createdAt, updatedAt             pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &spaceID, &category, &startDate, &endDate, &startMinute, &endMinute, &status,
		&classification, &unit, &pricePerUnit, &unitsBooked, &subtotal, &discountPercent,
		&discountAmount, &total, &tenantID, &note, &discountReason, &cancelNote, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	iv, err := intervalFromRow(startDate, endDate, startMinute, endMinute)
	if err != nil {
		return nil, err
	}
	cat, err := space.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	st, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	cls, err := pricing.ParseClassification(classification)
	if err != nil {
		return nil, err
	}
	ru, err := pricing.ParseRentUnit(unit)
	if err != nil {
		return nil, err
	}
	pct, err := decimal.NewFromString(discountPercent)
	if err != nil {
		return nil, errs.Wrap(err, "parse discount percent")
	}

	price := reservation.PriceSnapshot{
		Classification:  cls,
		Unit:            ru,
		PricePerUnit:    pricing.NewMoney(pricePerUnit),
		UnitsBooked:     unitsBooked,
		Subtotal:        pricing.NewMoney(subtotal),
		DiscountPercent: pct,
		DiscountAmount:  pricing.NewMoney(discountAmount),
		TotalCost:       pricing.NewMoney(total),
	}
	details := reservation.Details{
		TenantID:       pgconv.StringPtrFromPgtype(tenantID),
		Note:           reservation.NewNote(note),
		DiscountReason: discountReason,
	}

	return reservation.ReconstructReservation(
		pgconv.UUIDFromPgtype(id),
		spaceID,
		cat,
		iv,
		price,
		st,
		details,
		cancelNote,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func intervalFromRow(startDate, endDate pgtype.Date, startMinute, endMinute pgtype.Int4) (reservation.Interval, error) {
	var startTime, endTime *reservation.TimeOfDay
	if m := pgconv.IntPtrFromPgtype(startMinute); m != nil {
		t, err := reservation.TimeOfDayFromMinutes(*m)
		if err != nil {
			return reservation.Interval{}, err
		}
		startTime = &t
	}
	if m := pgconv.IntPtrFromPgtype(endMinute); m != nil {
		t, err := reservation.TimeOfDayFromMinutes(*m)
		if err != nil {
			return reservation.Interval{}, err
		}
		endTime = &t
	}
	return reservation.NewInterval(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate), startTime, endTime)
}
