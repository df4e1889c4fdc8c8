package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-hobbies-api/internal/metrics"
)

// unmatchedRoute labels requests that hit no route so label cardinality stays bounded.
const unmatchedRoute = "unmatched"

// Metrics records request counts, durations and in-flight requests.
func Metrics(m *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.ActiveRequests.Inc()
		defer m.ActiveRequests.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		if c.Writer.Status() == http.StatusTooManyRequests {
			m.RateLimitedTotal.Inc()
		}
	}
}
