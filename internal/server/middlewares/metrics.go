package middlewares

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/swappo/swappo-toolkit/internal/metrics"
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
