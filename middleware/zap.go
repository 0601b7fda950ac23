package middleware

import (
	"Cookhub/pkg/context"
	"Cookhub/pkg/log"
	"Cookhub/pkg/response"
	"Cookhub/pkg/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap 访问日志
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.Uint64("user_id", context.OptionalUserID(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.L.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.L.Warn("request", fields...)
		default:
			log.L.Info("request", fields...)
		}
	}
}

// RecoveryWithZap panic 兜底，记录堆栈后返回 500
func RecoveryWithZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("trace", utils.PanicTrace(r)),
				)
				response.Abort(c, http.StatusInternalServerError, "internal server error")
			}
		}()
		c.Next()
	}
}
