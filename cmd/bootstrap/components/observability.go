package components

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"mall-space-booking/internal/handler"
	"mall-space-booking/internal/infra/metrics"
	"mall-space-booking/internal/usecase/shared"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		fx.Annotate(
			metrics.NewLedgerMetrics,
			fx.As(new(shared.LedgerMetrics)),
		),
		metrics.NewHTTPMetrics,
		func(reg *prometheus.Registry, m *metrics.HTTPMetrics) handler.Observability {
			return handler.Observability{Gatherer: reg, HTTPMetrics: m}
		},
	),
)
