package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nu-immigration/server/pkg/metrics"
)

// MetricsMiddleware counts requests per route/method/status. Unmatched paths
// are bucketed under "unmatched" to keep label cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
