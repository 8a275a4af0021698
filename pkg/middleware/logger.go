package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/partner-showcase/pkg/logger"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		statusCode := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", statusCode),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}

		reqLogger := logger.WithContext(c.Request.Context())

		switch {
		case len(c.Errors) > 0:
			reqLogger.Error("Request completed with errors", append(fields, zap.String("errors", c.Errors.String()))...)
		case statusCode >= 500:
			reqLogger.Warn("Request completed", fields...)
		default:
			reqLogger.Info("Request completed", fields...)
		}
	}
}
