package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RateLimitMiddleware struct {
	limiter  Limiter
	window   time.Duration
	failOpen bool
}

func NewRateLimitMiddleware(limiter Limiter, window time.Duration, failOpen bool) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, window: window, failOpen: failOpen}
}

// Limit keys on the authenticated user and falls back to the client IP.
func (m *RateLimitMiddleware) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":ip:" + c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			key = scope + ":user:" + userID.String()
		}

		allowed, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable", "scope", scope, "error", err.Error(), "fail_open", m.failOpen)
			if m.failOpen {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": gin.H{"message": "Rate limiter unavailable"},
			})
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(m.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Too many requests"},
			})
			return
		}

		c.Next()
	}
}
