package response

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/usecase/queries"
)

// copyOption flattens pricing value types into their wire form.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pricing.Money{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(pricing.Money).Minor(), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).String(), nil
			},
		},
	},
}

type BreakdownResponse struct {
	BaseRate       int64  `json:"baseRate"`
	Units          int64  `json:"units"`
	DiscountAmount *int64 `json:"discountAmount,omitempty"`
	FinalCost      int64  `json:"finalCost"`
}

type QuoteResponse struct {
	Category        string            `json:"category"`
	Classification  string            `json:"classification"`
	RentUnit        string            `json:"rentUnit"`
	PricePerUnit    int64             `json:"pricePerUnit"`
	UnitsBooked     int64             `json:"unitsBooked"`
	Subtotal        int64             `json:"subtotal"`
	DiscountPercent string            `json:"discountPercent"`
	DiscountAmount  int64             `json:"discountAmount"`
	TotalCost       int64             `json:"totalCost"`
	Breakdown       BreakdownResponse `json:"breakdown"`
}

func FromQuote(category string, r *pricing.Result) *QuoteResponse {
	return &QuoteResponse{
		Category:        category,
		Classification:  r.Classification.String(),
		RentUnit:        r.Unit.String(),
		PricePerUnit:    r.PricePerUnit.Minor(),
		UnitsBooked:     r.UnitsBooked,
		Subtotal:        r.Subtotal.Minor(),
		DiscountPercent: r.DiscountPercent.String(),
		DiscountAmount:  r.DiscountAmount.Minor(),
		TotalCost:       r.TotalCost.Minor(),
		Breakdown:       fromBreakdown(r.Breakdown),
	}
}

func fromBreakdown(b pricing.Breakdown) BreakdownResponse {
	out := BreakdownResponse{
		BaseRate:  b.BaseRate.Minor(),
		Units:     b.Units,
		FinalCost: b.FinalCost.Minor(),
	}
	if b.DiscountAmount != nil {
		v := b.DiscountAmount.Minor()
		out.DiscountAmount = &v
	}
	return out
}

type RateResponse struct {
	Classification string `json:"classification"`
	Unit           string `json:"rentUnit"`
	PricePerUnit   int64  `json:"pricePerUnit"`
}

type CategoryRatesResponse struct {
	Category    string         `json:"category"`
	DisplayName string         `json:"displayName"`
	Rates       []RateResponse `json:"rates"`
}

func FromCategoryRates(groups []queries.CategoryRates) ([]CategoryRatesResponse, error) {
	out := make([]CategoryRatesResponse, 0, len(groups))
	for _, g := range groups {
		rates := make([]RateResponse, 0, len(g.Rates))
		if err := copier.CopyWithOption(&rates, g.Rates, copyOption); err != nil {
			return nil, err
		}
		out = append(out, CategoryRatesResponse{
			Category:    g.Category.String(),
			DisplayName: g.DisplayName,
			Rates:       rates,
		})
	}
	return out, nil
}

type SuggestionResponse struct {
	CurrentPrice      int64  `json:"currentPrice"`
	SuggestedPrice    int64  `json:"suggestedPrice"`
	AdjustmentPercent string `json:"adjustmentPercent"`
	Reason            string `json:"reason"`
}

func FromSuggestion(s *pricing.Suggestion) (*SuggestionResponse, error) {
	var out SuggestionResponse
	if err := copier.CopyWithOption(&out, s, copyOption); err != nil {
		return nil, err
	}
	return &out, nil
}

type HolidaysResponse struct {
	Dates []string `json:"dates"`
}

func FromHolidays(dates []time.Time) HolidaysResponse {
	out := HolidaysResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		out.Dates = append(out.Dates, pricing.FormatDate(d))
	}
	return out
}
