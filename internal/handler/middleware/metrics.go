package middleware

import (
	"time"

	"sendero-web/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute keeps label cardinality bounded for static files and 404s.
const unmatchedRoute = "unmatched"

func Metrics(rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		rec.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
