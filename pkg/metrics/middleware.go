package metrics

import (
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute keeps arbitrary 404 paths out of the route label.
const unmatchedRoute = "unmatched"

// GinMiddleware records request metrics labelled by the route template, so
// /orders/:order_id is one series no matter how many orders are read.
// Requests to skipRoutes (probes, the scrape endpoint) are not recorded.
func GinMiddleware(skipRoutes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if slices.Contains(skipRoutes, route) {
			c.Next()
			return
		}
		if route == "" {
			route = unmatchedRoute
		}

		HTTPRequestsInFlight.Inc()
		start := time.Now()

		c.Next()

		HTTPRequestsInFlight.Dec()
		status := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(route, c.Request.Method, status).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
		if size := c.Writer.Size(); size > 0 {
			HTTPResponseSize.WithLabelValues(route).Observe(float64(size))
		}
	}
}
