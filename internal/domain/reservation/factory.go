package reservation

import (
	"strings"

	"github.com/google/uuid"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/space"
	"mall-space-booking/internal/pkg/clock"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateReservation turns a priced request into a new Pending reservation.
func (f *Factory) CreateReservation(
	spaceID string,
	category space.Category,
	interval Interval,
	priced pricing.Result,
	details Details,
) (*Reservation, error) {
	spaceID = strings.TrimSpace(spaceID)
	if spaceID == "" {
		return nil, ErrEmptySpaceID
	}

	now := f.Clock.Now()
	return &Reservation{
		id:             uuid.New(),
		spaceID:        spaceID,
		category:       category,
		interval:       interval,
		price:          SnapshotOf(priced),
		status:         StatusPending,
		tenantID:       details.TenantID,
		note:           details.Note,
		discountReason: details.DiscountReason,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}
