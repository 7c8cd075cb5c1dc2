package reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/space"
)

// PriceSnapshot is the pricing outcome fixed at creation. It never changes afterwards.
type PriceSnapshot struct {
	Classification  pricing.Classification
	Unit            pricing.RentUnit
	PricePerUnit    pricing.Money
	UnitsBooked     int64
	Subtotal        pricing.Money
	DiscountPercent decimal.Decimal
	DiscountAmount  pricing.Money
	TotalCost       pricing.Money
}

func SnapshotOf(r pricing.Result) PriceSnapshot {
	return PriceSnapshot{
		Classification:  r.Classification,
		Unit:            r.Unit,
		PricePerUnit:    r.PricePerUnit,
		UnitsBooked:     r.UnitsBooked,
		Subtotal:        r.Subtotal,
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
		TotalCost:       r.TotalCost,
	}
}

type Reservation struct {
	id             uuid.UUID
	spaceID        string
	category       space.Category
	interval       Interval
	price          PriceSnapshot
	status         Status
	tenantID       *string
	note           Note
	discountReason string
	cancelReason   string
	createdAt      time.Time
	updatedAt      time.Time
}

// Details are the caller-supplied descriptive fields of a booking.
type Details struct {
	TenantID       *string
	Note           Note
	DiscountReason string
}

func ReconstructReservation(
	id uuid.UUID,
	spaceID string,
	category space.Category,
	interval Interval,
	price PriceSnapshot,
	status Status,
	details Details,
	cancelReason string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		spaceID:        spaceID,
		category:       category,
		interval:       interval,
		price:          price,
		status:         status,
		tenantID:       details.TenantID,
		note:           details.Note,
		discountReason: details.DiscountReason,
		cancelReason:   cancelReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// TransitionTo moves the reservation along the status graph.
func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return &TransitionError{From: r.status, To: next}
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// Cancel transitions to Cancelled and records why.
func (r *Reservation) Cancel(reason string, now time.Time) error {
	if err := r.TransitionTo(StatusCancelled, now); err != nil {
		return err
	}
	r.cancelReason = reason
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

// ConflictsWith reports whether both reservations hold the same space over an overlapping interval.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.id == other.id || r.spaceID != other.spaceID {
		return false
	}
	if !r.IsActive() || !other.IsActive() {
		return false
	}
	return r.interval.Overlaps(other.interval)
}

// Clone returns an independent copy.
func (r *Reservation) Clone() *Reservation {
	c := *r
	if r.tenantID != nil {
		t := *r.tenantID
		c.tenantID = &t
	}
	return &c
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) SpaceID() string          { return r.spaceID }
func (r *Reservation) Category() space.Category { return r.category }
func (r *Reservation) Interval() Interval       { return r.interval }
func (r *Reservation) Price() PriceSnapshot     { return r.price }
func (r *Reservation) TotalCost() pricing.Money { return r.price.TotalCost }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) TenantID() *string        { return r.tenantID }
func (r *Reservation) Note() Note               { return r.note }
func (r *Reservation) DiscountReason() string   { return r.discountReason }
func (r *Reservation) CancelReason() string     { return r.cancelReason }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
