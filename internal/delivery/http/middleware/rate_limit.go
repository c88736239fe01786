package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for the in-memory rate limiter.
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
}

// rateLimitEntry tracks request count for a client key
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// RateLimit returns a fixed-window, per-IP limiter. State is in-memory:
// the platform runs single-instance, so no shared store is needed.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	var store sync.Map

	// Janitor drops expired windows so the map does not grow unbounded.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			store.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					store.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()

	return func(c *gin.Context) {
		key := c.ClientIP()

		value, _ := store.LoadOrStore(key, &rateLimitEntry{resetAt: time.Now().Add(cfg.Window)})
		entry := value.(*rateLimitEntry)

		entry.mu.Lock()
		now := time.Now()
		if now.After(entry.resetAt) {
			entry.count = 0
			entry.resetAt = now.Add(cfg.Window)
		}
		entry.count++
		blocked := entry.count > cfg.Limit
		entry.mu.Unlock()

		if blocked {
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
