package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/domain/space"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	SpaceID      string
	Category     space.Category
	StartDate    string
	EndDate      string
	StartTime    string
	EndTime      string
	Status       reservation.Status
	UnitsBooked  int64
	PricePerUnit int64
	Discount     string
	TenantID     *string
	Note         string
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:           uuid.New(),
		SpaceID:      "S-101",
		Category:     space.CategorySmallShop,
		StartDate:    "2024-06-20",
		EndDate:      "2024-06-22",
		Status:       reservation.StatusPending,
		UnitsBooked:  2,
		PricePerUnit: 1000,
		Discount:     "0",
		CreatedAt:    created,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Dates(start, end string) *ReservationBuilder {
	b.StartDate, b.EndDate = start, end
	return b
}

func (b *ReservationBuilder) Times(start, end string) *ReservationBuilder {
	b.StartTime, b.EndTime = start, end
	return b
}

func (b *ReservationBuilder) BuildInterval() (reservation.Interval, error) {
	start, err := pricing.ParseDate(b.StartDate)
	if err != nil {
		return reservation.Interval{}, err
	}
	end, err := pricing.ParseDate(b.EndDate)
	if err != nil {
		return reservation.Interval{}, err
	}
	if b.StartTime == "" && b.EndTime == "" {
		return reservation.NewDateInterval(start, end)
	}
	st, err := reservation.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return reservation.Interval{}, err
	}
	et, err := reservation.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return reservation.Interval{}, err
	}
	return reservation.NewTimedInterval(start, end, st, et)
}

// BuildDomain panics on an invalid builder so table setups stay short.
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	iv, err := b.BuildInterval()
	if err != nil {
		panic("builder: " + err.Error())
	}
	subtotal := b.PricePerUnit * b.UnitsBooked
	pct := decimal.RequireFromString(b.Discount)
	discount := decimal.NewFromInt(subtotal).Mul(pct).Div(decimal.NewFromInt(100)).Round(0).IntPart()

	return reservation.ReconstructReservation(
		b.ID,
		b.SpaceID,
		b.Category,
		iv,
		reservation.PriceSnapshot{
			Classification:  pricing.WeekDay,
			Unit:            pricing.DayWise,
			PricePerUnit:    pricing.NewMoney(b.PricePerUnit),
			UnitsBooked:     b.UnitsBooked,
			Subtotal:        pricing.NewMoney(subtotal),
			DiscountPercent: pct,
			DiscountAmount:  pricing.NewMoney(discount),
			TotalCost:       pricing.NewMoney(subtotal - discount),
		},
		b.Status,
		reservation.Details{TenantID: b.TenantID, Note: reservation.NewNote(b.Note)},
		"",
		b.CreatedAt,
		b.CreatedAt,
	)
}
