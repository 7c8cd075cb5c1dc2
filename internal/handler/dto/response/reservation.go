package response

import (
	"time"

	"github.com/google/uuid"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	SpaceID         string    `json:"spaceId"`
	Category        string    `json:"category"`
	CategoryName    string    `json:"categoryName"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	StartTime       *string   `json:"startTime,omitempty"`
	EndTime         *string   `json:"endTime,omitempty"`
	Status          string    `json:"status"`
	Classification  string    `json:"classification"`
	RentUnit        string    `json:"rentUnit"`
	PricePerUnit    int64     `json:"pricePerUnit"`
	UnitsBooked     int64     `json:"unitsBooked"`
	Subtotal        int64     `json:"subtotal"`
	DiscountPercent string    `json:"discountPercent"`
	DiscountAmount  int64     `json:"discountAmount"`
	TotalCost       int64     `json:"totalCost"`
	TenantID        *string   `json:"tenantId,omitempty"`
	Note            *string   `json:"note,omitempty"`
	DiscountReason  *string   `json:"discountReason,omitempty"`
	CancelReason    *string   `json:"cancelReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID        uuid.UUID `json:"id"`
	SpaceID   string    `json:"spaceId"`
	Category  string    `json:"category"`
	Slot      string    `json:"slot"`
	Status    string    `json:"status"`
	TotalCost int64     `json:"totalCost"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConflictsResponse struct {
	SpaceID     string                     `json:"spaceId"`
	HasConflict bool                       `json:"hasConflict"`
	Conflicts   []*ReservationListResponse `json:"conflicts"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	iv := r.Interval()
	price := r.Price()
	resp := &ReservationResponse{
		ID:              r.ID(),
		SpaceID:         r.SpaceID(),
		Category:        r.Category().String(),
		CategoryName:    r.Category().DisplayName(),
		StartDate:       pricing.FormatDate(iv.StartDate()),
		EndDate:         pricing.FormatDate(iv.EndDate()),
		Status:          r.Status().String(),
		Classification:  price.Classification.String(),
		RentUnit:        price.Unit.String(),
		PricePerUnit:    price.PricePerUnit.Minor(),
		UnitsBooked:     price.UnitsBooked,
		Subtotal:        price.Subtotal.Minor(),
		DiscountPercent: price.DiscountPercent.String(),
		DiscountAmount:  price.DiscountAmount.Minor(),
		TotalCost:       price.TotalCost.Minor(),
		TenantID:        r.TenantID(),
		Note:            nonEmpty(r.Note().String()),
		DiscountReason:  nonEmpty(r.DiscountReason()),
		CancelReason:    nonEmpty(r.CancelReason()),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
	if st, et, ok := iv.TimeRange(); ok {
		s, e := st.String(), et.String()
		resp.StartTime, resp.EndTime = &s, &e
	}
	return resp
}

func FromReservationListItem(r *reservation.Reservation) *ReservationListResponse {
	return &ReservationListResponse{
		ID:        r.ID(),
		SpaceID:   r.SpaceID(),
		Category:  r.Category().String(),
		Slot:      r.Interval().String(),
		Status:    r.Status().String(),
		TotalCost: r.TotalCost().Minor(),
		CreatedAt: r.CreatedAt(),
	}
}

func FromReservationList(rs []*reservation.Reservation) []*ReservationListResponse {
	out := make([]*ReservationListResponse, len(rs))
	for i, r := range rs {
		out[i] = FromReservationListItem(r)
	}
	return out
}

func FromConflicts(spaceID string, rs []*reservation.Reservation) *ConflictsResponse {
	return &ConflictsResponse{
		SpaceID:     spaceID,
		HasConflict: len(rs) > 0,
		Conflicts:   FromReservationList(rs),
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
