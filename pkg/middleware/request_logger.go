package middleware

import (
	"strings"
	"time"

	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs method, path, status and duration for API routes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if strings.HasPrefix(path, "/api") {
			log.Info("%s %s %d in %s",
				c.Request.Method, path, c.Writer.Status(), time.Since(start))
		}
	}
}
