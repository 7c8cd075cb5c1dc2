package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver is satisfied by *metrics.HTTPMetrics.
type RequestObserver interface {
	Observe(method, route string, status int, elapsed time.Duration)
}

// Metrics records every request under its route template, not the raw path.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
