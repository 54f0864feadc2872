package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mortgage-simulator/metrics"
	"mortgage-simulator/pkg/response"
)

// RateLimitMiddleware rejects clients that exceed their token bucket.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// MetricsMiddleware records request latency per route and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
