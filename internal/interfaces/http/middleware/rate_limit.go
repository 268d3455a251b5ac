// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit implements per-client fixed-window rate limiting. Counters
// live in process memory, consistent with the rest of the application's
// storage model.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	var mu sync.Mutex
	windows := make(map[string]*rateWindow)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()

		mu.Lock()
		w, ok := windows[clientIP]
		if !ok || now.After(w.resetAt) {
			w = &rateWindow{resetAt: now.Add(time.Minute)}
			windows[clientIP] = w
		}

		if w.count >= cfg.Security.RateLimitPerMinute {
			resetAt := w.resetAt
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": int(time.Until(resetAt).Seconds()),
			})
			c.Abort()
			return
		}

		w.count++
		remaining := cfg.Security.RateLimitPerMinute - w.count
		resetAt := w.resetAt
		mu.Unlock()

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Security.RateLimitPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		c.Next()
	}
}
