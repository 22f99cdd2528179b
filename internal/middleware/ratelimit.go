package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/handsigned/handsigned/backend/internal/metrics"
)

// FixedWindowLimiter is a process-wide request ceiling over a fixed time
// window. It is not keyed per client: the (N+1)-th request inside the window
// is rejected no matter who sent it, and the counter resets when the window
// rolls over. The limiter is an explicit object owned by whoever assembles
// the router, never package-level state.
type FixedWindowLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	max         int
	windowStart time.Time
	count       int
}

func NewFixedWindowLimiter(window time.Duration, max int) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		window:      window,
		max:         max,
		windowStart: time.Now(),
	}
}

// Allow records one request and reports whether it fits in the current window.
func (l *FixedWindowLimiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		l.count = 0
	}

	if l.count >= l.max {
		return false
	}
	l.count++
	return true
}

// RateLimit returns middleware that rejects requests over the limiter's
// ceiling before any further handling (validation included) runs.
func RateLimit(l *FixedWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			metrics.RateLimitedTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "RATE_LIMITED",
				"details": "too many requests, retry later",
			})
			return
		}
		c.Next()
	}
}
