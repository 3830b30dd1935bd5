package ratelimit

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/dropwatch/internal/pkg/response"
)

// Middleware limits requests per client IP
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return CustomKeyMiddleware(limiter, nil)
}

// CustomKeyMiddleware limits requests per keyFunc(c). An empty key falls back to the client IP.
func CustomKeyMiddleware(limiter *RateLimiter, keyFunc func(c *gin.Context) string) gin.HandlerFunc {
	limit := strconv.Itoa(limiter.Limit())

	return func(c *gin.Context) {
		var key string
		if keyFunc != nil {
			key = keyFunc(c)
		}
		if key == "" {
			key = c.ClientIP()
		}

		allowed := limiter.Allow(key)
		resetTime := limiter.ResetTime(key)

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Header("X-RateLimit-Reset", resetTime.UTC().Format(time.RFC3339))

		if !allowed {
			retryAfter := int(math.Ceil(time.Until(resetTime).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.TooManyRequests(c, "Too many requests, please try again later", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}
