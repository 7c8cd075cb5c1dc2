package shared

import (
	"time"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
)

// ListFilter narrows a reservation listing. Zero fields do not filter.
// From and To select reservations whose booked days touch [From, To].
type ListFilter struct {
	SpaceID string
	Status  *reservation.Status
	From    *time.Time
	To      *time.Time
}

func (f ListFilter) Matches(r *reservation.Reservation) bool {
	if f.SpaceID != "" && r.SpaceID() != f.SpaceID {
		return false
	}
	if f.Status != nil && r.Status() != *f.Status {
		return false
	}
	iv := r.Interval()
	if f.To != nil && iv.StartDate().After(pricing.Day(*f.To)) {
		return false
	}
	if f.From != nil && LastDay(iv).Before(pricing.Day(*f.From)) {
		return false
	}
	return true
}

// LastDay is the final calendar day an interval occupies.
func LastDay(iv reservation.Interval) time.Time {
	if iv.EndDate().Equal(iv.StartDate()) {
		return iv.StartDate()
	}
	return iv.EndDate().AddDate(0, 0, -1)
}
