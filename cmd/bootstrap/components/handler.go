package components

import (
	"go.uber.org/fx"

	"mall-space-booking/internal/handler"
	"mall-space-booking/internal/handler/api"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
