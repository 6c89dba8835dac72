package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/irisdrone/tracker/metrics"
)

// Metrics records request count, latency and in-flight requests. Requests are
// labelled by route template so path parameters do not explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordAPIRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
