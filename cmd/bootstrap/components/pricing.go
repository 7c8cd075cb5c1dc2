package components

import (
	"log/slog"

	"go.uber.org/fx"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/pkg/config"
	"mall-space-booking/internal/usecase/commands"
	"mall-space-booking/internal/usecase/queries"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		NewRateTable,
		NewHolidayCalendar,
		fx.Annotate(
			func(c *pricing.HolidayCalendar) *pricing.HolidayCalendar { return c },
			fx.As(new(pricing.HolidaySet)),
			fx.As(new(commands.HolidayReplacer)),
			fx.As(new(queries.HolidayLister)),
		),
		pricing.NewCalculator,
		fx.Annotate(
			func(c *pricing.Calculator) *pricing.Calculator { return c },
			fx.As(new(commands.Pricer)),
		),
	),
)

// NewRateTable loads PRICING_TABLE_PATH, falling back to the built-in table.
func NewRateTable(cfg config.Config, logger *slog.Logger) (*pricing.RateTable, error) {
	if cfg.Pricing.TablePath == "" {
		return pricing.DefaultRateTable(), nil
	}
	table, err := pricing.LoadRateTable(cfg.Pricing.TablePath)
	if err != nil {
		return nil, err
	}
	logger.Info("rate table loaded", "path", cfg.Pricing.TablePath, "entries", len(table.Entries()))
	return table, nil
}

func NewHolidayCalendar(cfg config.Config) (*pricing.HolidayCalendar, error) {
	return pricing.ParseHolidayCalendar(cfg.Pricing.Holidays)
}
