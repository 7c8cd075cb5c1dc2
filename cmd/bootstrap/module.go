package bootstrap

import (
	"go.uber.org/fx"

	"mall-space-booking/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	components.ObservabilityModule,
	components.PricingModule,
	components.LedgerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
