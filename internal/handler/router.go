package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limiter "github.com/ulule/limiter/v3"

	"mall-space-booking/internal/handler/api"
	"mall-space-booking/internal/handler/middleware"
	"mall-space-booking/internal/infra/metrics"
	"mall-space-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Observability bundles what the router needs for /metrics and request metrics.
type Observability struct {
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	pricingHandler *api.PricingHandler,
	reservationHandler *api.ReservationHandler,
	obs Observability,
	limiterStore limiter.Store,
) error {
	if err := setupMiddleware(engine, cfg, obs, limiterStore); err != nil {
		return err
	}
	setupRoutes(engine, pricingHandler, reservationHandler, obs)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, obs Observability, limiterStore limiter.Store) error {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	if obs.HTTPMetrics != nil {
		engine.Use(middleware.Metrics(obs.HTTPMetrics))
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	if cfg.RateLimit.Enabled && limiterStore != nil {
		rl, err := middleware.NewRateLimitMiddleware(limiterStore, cfg.RateLimit.Rate)
		if err != nil {
			return err
		}
		engine.Use(rl)
	}
	engine.Use(middleware.ErrorHandler())
	return nil
}

func setupRoutes(engine *gin.Engine, pricingHandler *api.PricingHandler, reservationHandler *api.ReservationHandler, obs Observability) {
	engine.GET("/health", healthCheck)
	if obs.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(metrics.Handler(obs.Gatherer)))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/pricing"), []route{
			{Method: http.MethodPost, Path: "/quote", Handler: pricingHandler.Quote},
			{Method: http.MethodGet, Path: "/rates", Handler: pricingHandler.Rates},
			{Method: http.MethodPost, Path: "/suggestions", Handler: pricingHandler.Suggest},
			{Method: http.MethodGet, Path: "/holidays", Handler: pricingHandler.Holidays},
			{Method: http.MethodPut, Path: "/holidays", Handler: pricingHandler.ReplaceHolidays},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: reservationHandler.UpdateStatus},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
		})

		addRoutes(apiGroup.Group("/spaces"), []route{
			{Method: http.MethodGet, Path: "/:spaceId/conflicts", Handler: reservationHandler.Conflicts},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
