package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-hobbies-api/internal/response"
	"go.uber.org/zap"
)

// Recovery turns a panic into the 500 error envelope.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.Stack("stack"),
		)
		response.AbortWithError(c, http.StatusInternalServerError, "Internal server error", nil)
	})
}
