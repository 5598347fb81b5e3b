package middleware

import (
	"net/http"
	"time"

	"motorhub/internal/pkg/logger"
	"motorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestLogger records every request with latency and status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if status >= http.StatusInternalServerError {
			logger.ErrorLogger.Errorf("%s %s status=%d latency=%s", c.Request.Method, c.Request.URL.Path, status, latency)
			return
		}
		logger.InfoLogger.Infof("%s %s status=%d latency=%s", c.Request.Method, c.Request.URL.Path, status, latency)
	}
}

// Recovery converts panics into the standard error envelope instead of
// killing the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorLogger.Errorf("panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
