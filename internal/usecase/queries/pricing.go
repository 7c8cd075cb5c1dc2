package queries

//go:generate mockgen -source=pricing.go -destination=../../testutil/mock/queries/pricing_mock.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/space"
	"mall-space-booking/internal/usecase/shared"
)

type QuoteInput struct {
	Category         space.Category
	StartDate        time.Time
	EndDate          time.Time
	UnitsBooked      int64
	SizeInSquareFeet int64
	DiscountPercent  decimal.Decimal
}

// SuggestInput takes the current price directly, or resolves it from the rate table.
type SuggestInput struct {
	CurrentUtilization decimal.Decimal
	TargetUtilization  decimal.Decimal
	CurrentPrice       *pricing.Money
	Category           space.Category
	Classification     pricing.Classification
}

// CategoryRates groups a category's configured rates.
type CategoryRates struct {
	Category    space.Category
	DisplayName string
	Rates       []pricing.RateEntry
}

type PricingQueries interface {
	Quote(ctx context.Context, in QuoteInput) (*pricing.Result, error)
	Rates(ctx context.Context, category *space.Category) ([]CategoryRates, error)
	Holidays(ctx context.Context) []time.Time
	Suggest(ctx context.Context, in SuggestInput) (*pricing.Suggestion, error)
}

type HolidayLister interface {
	Dates() []time.Time
}

type pricingQueriesImpl struct {
	calculator *pricing.Calculator
	holidays   HolidayLister
	metrics    shared.LedgerMetrics
}

func NewPricingQueries(calculator *pricing.Calculator, holidays HolidayLister, metrics shared.LedgerMetrics) PricingQueries {
	return &pricingQueriesImpl{calculator: calculator, holidays: holidays, metrics: metrics}
}

func (q *pricingQueriesImpl) Quote(_ context.Context, in QuoteInput) (*pricing.Result, error) {
	res, err := q.calculator.Price(pricing.Request{
		Category:         in.Category,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		UnitsBooked:      in.UnitsBooked,
		SizeInSquareFeet: in.SizeInSquareFeet,
		DiscountPercent:  in.DiscountPercent,
	})
	if err != nil {
		q.metrics.Quote(shared.OutcomeRejected)
		return nil, err
	}
	q.metrics.Quote(shared.OutcomeCreated)
	return &res, nil
}

func (q *pricingQueriesImpl) Rates(_ context.Context, category *space.Category) ([]CategoryRates, error) {
	cats := space.Categories()
	if category != nil {
		if !category.IsValid() {
			return nil, space.ErrUnknownCategory
		}
		cats = []space.Category{*category}
	}

	table := q.calculator.Table()
	out := make([]CategoryRates, 0, len(cats))
	for _, c := range cats {
		entries := table.EntriesFor(c)
		if len(entries) == 0 {
			continue
		}
		out = append(out, CategoryRates{Category: c, DisplayName: c.DisplayName(), Rates: entries})
	}
	return out, nil
}

func (q *pricingQueriesImpl) Holidays(_ context.Context) []time.Time {
	return q.holidays.Dates()
}

func (q *pricingQueriesImpl) Suggest(_ context.Context, in SuggestInput) (*pricing.Suggestion, error) {
	price := in.CurrentPrice
	if price == nil {
		cl := in.Classification
		if cl == "" {
			cl = pricing.AllDays
		}
		entry, err := q.calculator.Table().Resolve(in.Category, cl)
		if err != nil {
			return nil, err
		}
		price = &entry.PricePerUnit
	}
	s := pricing.SuggestPrice(in.CurrentUtilization, in.TargetUtilization, *price)
	return &s, nil
}
