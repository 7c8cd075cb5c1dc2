package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mall-space-booking/internal/domain/space"
)

var hundred = decimal.NewFromInt(100)

// Request is what a quote or reservation needs priced.
type Request struct {
	Category    space.Category
	StartDate   time.Time
	EndDate     time.Time
	UnitsBooked int64
	// SizeInSquareFeet is only read for SquareFootWise rates.
	SizeInSquareFeet int64
	DiscountPercent  decimal.Decimal
}

type Breakdown struct {
	BaseRate Money
	Units    int64
	// DiscountAmount is nil when no discount was requested.
	DiscountAmount *Money
	FinalCost      Money
}

type Result struct {
	Classification  Classification
	Unit            RentUnit
	PricePerUnit    Money
	UnitsBooked     int64
	Subtotal        Money
	DiscountPercent decimal.Decimal
	DiscountAmount  Money
	TotalCost       Money
	Breakdown       Breakdown
}

// Calculator prices requests against a rate table and a holiday set.
type Calculator struct {
	table    *RateTable
	holidays HolidaySet
}

func NewCalculator(table *RateTable, holidays HolidaySet) *Calculator {
	return &Calculator{table: table, holidays: holidays}
}

func (c *Calculator) Table() *RateTable {
	return c.table
}

// Price is deterministic for a fixed table and holiday set. Multi-day bookings
// are priced at the classification of their start date.
func (c *Calculator) Price(req Request) (Result, error) {
	// A request with neither units nor a size can never be priced.
	if req.UnitsBooked <= 0 && req.SizeInSquareFeet <= 0 {
		return Result{}, ErrInvalidQuantity
	}
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(hundred) {
		return Result{}, ErrInvalidDiscount
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() || Day(req.EndDate).Before(Day(req.StartDate)) {
		return Result{}, ErrInvalidDateRange
	}

	classification := Classify(req.StartDate, c.holidays)
	entry, err := c.table.Resolve(req.Category, classification)
	if err != nil {
		return Result{}, err
	}

	units, err := unitsFor(entry.Unit, req)
	if err != nil {
		return Result{}, err
	}

	subtotal, err := entry.PricePerUnit.Times(units)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %d units at %s", ErrInvalidQuantity, units, entry.PricePerUnit)
	}

	discount := discountOf(subtotal, req.DiscountPercent)
	final := subtotal.Sub(discount)

	res := Result{
		Classification:  classification,
		Unit:            entry.Unit,
		PricePerUnit:    entry.PricePerUnit,
		UnitsBooked:     units,
		Subtotal:        subtotal,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  discount,
		TotalCost:       final,
		Breakdown: Breakdown{
			BaseRate:  entry.PricePerUnit,
			Units:     units,
			FinalCost: final,
		},
	}
	if !req.DiscountPercent.IsZero() {
		res.Breakdown.DiscountAmount = &discount
	}
	return res, nil
}

func unitsFor(unit RentUnit, req Request) (int64, error) {
	if unit != SquareFootWise {
		if req.UnitsBooked <= 0 {
			return 0, ErrInvalidQuantity
		}
		return req.UnitsBooked, nil
	}

	if req.SizeInSquareFeet <= 0 {
		return 0, fmt.Errorf("%w: size in square feet must be positive", ErrInvalidQuantity)
	}
	span := DaySpan(req.StartDate, req.EndDate)
	if span < 1 {
		return 0, fmt.Errorf("%w: banner bookings span at least one day", ErrInvalidQuantity)
	}
	units, err := NewMoney(req.SizeInSquareFeet).Times(span)
	if err != nil {
		return 0, ErrInvalidQuantity
	}
	return units.Minor(), nil
}

// discountOf rounds half up to the nearest minor unit.
func discountOf(subtotal Money, percent decimal.Decimal) Money {
	if percent.IsZero() {
		return Money{}
	}
	amount := decimal.NewFromInt(subtotal.Minor()).Mul(percent).Div(hundred).Round(0)
	return NewMoney(amount.IntPart())
}
