// internal/middleware/rate_limit_middleware.go
package middleware

import (
	"net/http"
	"time"

	"suscripciones-service/internal/pkg/response"
	"suscripciones-service/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware applies a fixed-window per-IP limit to a route group.
func RateLimitMiddleware(limiter *session.RateLimiter, maxRequests int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.CheckAPIRateLimit(c.Request.Context(), c.ClientIP(), c.FullPath(), maxRequests, window)
		if err != nil {
			// Redis being unavailable should not take the API down.
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "too many requests", nil)
			return
		}
		c.Next()
	}
}
