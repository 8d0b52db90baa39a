package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"auction-engine/utils"
)

// RequestLoggerMiddleware logs every request with timing once the handler
// chain has run. Server errors are logged at error level so operators can
// alert on them without parsing status codes out of info lines.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
		"client":  c.ClientIP(),
	}
	if c.Writer.Status() >= 500 {
		utils.Error("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}
