package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/domain/space"
	"mall-space-booking/internal/pkg/ptr"
	"mall-space-booking/internal/usecase/commands"
	"mall-space-booking/internal/usecase/queries"
	"mall-space-booking/internal/usecase/shared"
)

type CreateReservationRequest struct {
	SpaceID          string           `json:"spaceId" binding:"required,max=64"`
	Category         string           `json:"category" binding:"required"`
	StartDate        string           `json:"startDate" binding:"required"`
	EndDate          string           `json:"endDate" binding:"required"`
	StartTime        *string          `json:"startTime,omitempty"`
	EndTime          *string          `json:"endTime,omitempty"`
	UnitsBooked      int64            `json:"unitsBooked" binding:"gte=0"`
	SizeInSquareFeet int64            `json:"sizeInSquareFeet" binding:"gte=0"`
	DiscountPercent  *decimal.Decimal `json:"discountPercent,omitempty"`
	DiscountReason   *string          `json:"discountReason,omitempty" binding:"omitempty,max=255"`
	TenantID         *string          `json:"tenantId,omitempty" binding:"omitempty,max=64"`
	Note             *string          `json:"note,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateReservationRequest) ToInput() (commands.ReserveInput, error) {
	category, err := space.ParseCategory(r.Category)
	if err != nil {
		return commands.ReserveInput{}, err
	}
	start, end, err := parseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.ReserveInput{}, err
	}
	startTime, endTime, err := parseTimeRange(r.StartTime, r.EndTime)
	if err != nil {
		return commands.ReserveInput{}, err
	}

	return commands.ReserveInput{
		SpaceID:          strings.TrimSpace(r.SpaceID),
		Category:         category,
		StartDate:        start,
		EndDate:          end,
		StartTime:        startTime,
		EndTime:          endTime,
		UnitsBooked:      r.UnitsBooked,
		SizeInSquareFeet: r.SizeInSquareFeet,
		DiscountPercent:  discountOrZero(r.DiscountPercent),
		TenantID:         trimmedOrNil(r.TenantID),
		Note:             valueOrEmpty(r.Note),
		DiscountReason:   valueOrEmpty(r.DiscountReason),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ToStatus() (reservation.Status, error) {
	return reservation.ParseStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type CancelReservationRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ListReservationsQuery struct {
	SpaceID string `form:"spaceId"`
	Status  string `form:"status"`
	From    string `form:"from"`
	To      string `form:"to"`
}

func (q ListReservationsQuery) ToFilter() (shared.ListFilter, error) {
	f := shared.ListFilter{SpaceID: strings.TrimSpace(q.SpaceID)}
	if q.Status != "" {
		s, err := reservation.ParseStatus(strings.ToLower(q.Status))
		if err != nil {
			return shared.ListFilter{}, err
		}
		f.Status = &s
	}
	if q.From != "" {
		d, err := pricing.ParseDate(q.From)
		if err != nil {
			return shared.ListFilter{}, err
		}
		f.From = &d
	}
	if q.To != "" {
		d, err := pricing.ParseDate(q.To)
		if err != nil {
			return shared.ListFilter{}, err
		}
		f.To = &d
	}
	return f, nil
}

type ConflictsQuery struct {
	StartDate string  `form:"startDate" binding:"required"`
	EndDate   string  `form:"endDate" binding:"required"`
	StartTime *string `form:"startTime"`
	EndTime   *string `form:"endTime"`
}

func (q ConflictsQuery) ToInput(spaceID string) (queries.ConflictsInput, error) {
	start, end, err := parseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return queries.ConflictsInput{}, err
	}
	startTime, endTime, err := parseTimeRange(q.StartTime, q.EndTime)
	if err != nil {
		return queries.ConflictsInput{}, err
	}
	return queries.ConflictsInput{
		SpaceID:   strings.TrimSpace(spaceID),
		StartDate: start,
		EndDate:   end,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

func parseTimeRange(startStr, endStr *string) (*reservation.TimeOfDay, *reservation.TimeOfDay, error) {
	start, err := parseTime(startStr)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseTime(endStr)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func parseTime(s *string) (*reservation.TimeOfDay, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := reservation.ParseTimeOfDay(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func trimmedOrNil(s *string) *string {
	return ptr.NonZero(valueOrEmpty(s))
}

func valueOrEmpty(s *string) string {
	return strings.TrimSpace(ptr.Deref(s, ""))
}
