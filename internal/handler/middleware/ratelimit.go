package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	"mall-space-booking/internal/handler/httperr"
	"mall-space-booking/internal/pkg/errs"
)

// NewRateLimitMiddleware limits requests per client IP. rate uses the limiter
// format, e.g. "300-M".
func NewRateLimitMiddleware(store limiter.Store, rate string) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid rate %q", rate)
	}
	lim := limiter.New(store, r)
	slog.Info("rate limit middleware initialized", "limit", r.Limit, "period", r.Period)

	return mgin.NewMiddleware(lim,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				httperr.NewResponse(http.StatusTooManyRequests, "Too many requests", nil))
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// A broken limiter store must not take the API down.
			slog.Warn("rate limiter unavailable", "error", err)
			c.Next()
		}),
	), nil
}
