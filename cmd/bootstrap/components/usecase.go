package components

import (
	"go.uber.org/fx"

	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/pkg/clock"
	"mall-space-booking/internal/usecase/commands"
	"mall-space-booking/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewPricingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewPricingQueries,
	),
)
