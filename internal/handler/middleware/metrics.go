package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zolbayar-hub/holisticweb/internal/pkg/metrics"
)

// Metrics records request counts and latency keyed by the route template,
// so ids in paths do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
