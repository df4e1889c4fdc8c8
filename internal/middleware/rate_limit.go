package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/user-hobbies-api/internal/errors"
	"github.com/yukikurage/user-hobbies-api/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimit charges every request to the client IP. Requests for which skip
// returns true are not counted. A failing store lets the request through.
func RateLimit(store ratelimit.Store, log *zap.Logger, skip func(c *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skip != nil && skip(c) {
			c.Next()
			return
		}

		res, err := store.Take(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("Rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		reset := int(math.Ceil(time.Until(res.ResetAt).Seconds()))
		if reset < 0 {
			reset = 0
		}
		c.Header("RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("RateLimit-Reset", strconv.Itoa(reset))

		if !res.Allowed {
			log.Warn("Rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			c.Header("Retry-After", strconv.Itoa(reset))
			apierrors.Respond(c, log, apierrors.ErrRateLimited)
			return
		}

		c.Next()
	}
}
