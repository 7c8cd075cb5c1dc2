package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"mall-space-booking/internal/handler/middleware"
	"mall-space-booking/internal/pkg/config"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
