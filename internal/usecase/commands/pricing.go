package commands

//go:generate mockgen -source=pricing.go -destination=../../testutil/mock/commands/pricing_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"
)

// HolidayReplacer is satisfied by *pricing.HolidayCalendar.
type HolidayReplacer interface {
	Replace(dates []time.Time)
	Dates() []time.Time
}

type PricingCommands interface {
	ReplaceHolidays(ctx context.Context, dates []time.Time) []time.Time
}

type pricingCommandsImpl struct {
	holidays HolidayReplacer
}

func NewPricingCommands(holidays HolidayReplacer) PricingCommands {
	return &pricingCommandsImpl{holidays: holidays}
}

// ReplaceHolidays swaps the holiday set. Existing reservations keep their recorded price.
func (p *pricingCommandsImpl) ReplaceHolidays(ctx context.Context, dates []time.Time) []time.Time {
	p.holidays.Replace(dates)
	current := p.holidays.Dates()
	slog.InfoContext(ctx, "holiday calendar replaced", "count", len(current))
	return current
}
