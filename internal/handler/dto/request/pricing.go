package request

import (
	"time"

	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/space"
	"mall-space-booking/internal/pkg/ptr"
	"mall-space-booking/internal/usecase/queries"
)

type QuoteRequest struct {
	Category         string           `json:"category" binding:"required"`
	StartDate        string           `json:"startDate" binding:"required"`
	EndDate          string           `json:"endDate" binding:"required"`
	UnitsBooked      int64            `json:"unitsBooked" binding:"gte=0"`
	SizeInSquareFeet int64            `json:"sizeInSquareFeet" binding:"gte=0"`
	DiscountPercent  *decimal.Decimal `json:"discountPercent,omitempty"`
}

func (r QuoteRequest) ToInput() (queries.QuoteInput, error) {
	category, err := space.ParseCategory(r.Category)
	if err != nil {
		return queries.QuoteInput{}, err
	}
	start, end, err := parseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return queries.QuoteInput{}, err
	}
	return queries.QuoteInput{
		Category:         category,
		StartDate:        start,
		EndDate:          end,
		UnitsBooked:      r.UnitsBooked,
		SizeInSquareFeet: r.SizeInSquareFeet,
		DiscountPercent:  discountOrZero(r.DiscountPercent),
	}, nil
}

// SuggestPriceRequest takes utilizations as ratios. Without currentPrice the
// category rate for classification (default all_days) is used.
type SuggestPriceRequest struct {
	CurrentUtilization decimal.Decimal `json:"currentUtilization"`
	TargetUtilization  decimal.Decimal `json:"targetUtilization"`
	CurrentPrice       *int64          `json:"currentPrice,omitempty" binding:"omitempty,gte=0"`
	Category           string          `json:"category,omitempty"`
	Classification     string          `json:"classification,omitempty"`
}

func (r SuggestPriceRequest) ToInput() (queries.SuggestInput, error) {
	in := queries.SuggestInput{
		CurrentUtilization: r.CurrentUtilization,
		TargetUtilization:  r.TargetUtilization,
	}
	if r.CurrentPrice != nil {
		price := pricing.NewMoney(*r.CurrentPrice)
		in.CurrentPrice = &price
		return in, nil
	}

	category, err := space.ParseCategory(r.Category)
	if err != nil {
		return queries.SuggestInput{}, err
	}
	in.Category = category
	if r.Classification != "" {
		cl, err := pricing.ParseClassification(r.Classification)
		if err != nil {
			return queries.SuggestInput{}, err
		}
		in.Classification = cl
	}
	return in, nil
}

type RatesQuery struct {
	Category string `form:"category"`
}

// CategoryFilter returns nil when no category was asked for.
func (q RatesQuery) CategoryFilter() (*space.Category, error) {
	if q.Category == "" {
		return nil, nil
	}
	c, err := space.ParseCategory(q.Category)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type ReplaceHolidaysRequest struct {
	Dates []string `json:"dates" binding:"required,dive,required"`
}

func (r ReplaceHolidaysRequest) ToDates() ([]time.Time, error) {
	out := make([]time.Time, 0, len(r.Dates))
	for _, s := range r.Dates {
		d, err := pricing.ParseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := pricing.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := pricing.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func discountOrZero(d *decimal.Decimal) decimal.Decimal {
	return ptr.Deref(d, decimal.Zero)
}
