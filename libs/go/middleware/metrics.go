package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/starkport/starkport-api/libs/go/metrics"
)

// MetricsMiddleware records request counts and latencies for every route.
// The templated route path is used as the label so path cardinality stays
// bounded.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
