package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/partner-showcase/pkg/common"
	"github.com/richxcame/partner-showcase/pkg/logger"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500 AppError response carrying the request id.
// Install it first so panics raised by later middleware are caught too.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			requestID := GetCorrelationID(c)
			logger.WithContext(c.Request.Context()).Error("Panic recovered",
				zap.Any("panic", rec),
				zap.String("request_id", requestID),
				zap.String("route", c.FullPath()),
				zap.String("method", c.Request.Method),
				zap.Stack("stack"),
			)

			c.Abort()
			if c.Writer.Written() {
				return
			}
			appErr := common.NewInternalServerError("internal server error", fmt.Errorf("panic: %v", rec))
			common.AppErrorResponseWithRequestID(c, appErr, requestID)
		}()

		c.Next()
	}
}
