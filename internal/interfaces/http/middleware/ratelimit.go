package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter tracks request budgets per key over a fixed window. The global
// limiter keys on client IP; the login limiter keys on a prefixed IP so the
// two budgets stay independent.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
}

type bucket struct {
	used    int
	resetAt time.Time
}

// NewRateLimiter allows limit requests per window for each key. A sweeper
// goroutine drops buckets that have sat idle past their window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
	}
	go rl.sweep(window * 2)
	return rl
}

func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for now := range ticker.C {
		rl.mu.Lock()
		for key, b := range rl.buckets {
			if now.After(b.resetAt.Add(rl.window)) {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow consumes one request from the key's budget, reporting whether it
// was available.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b := rl.bucketFor(key)
	if b.used >= rl.limit {
		return false
	}
	b.used++
	return true
}

// Remaining reports how much of the key's budget is left in the current
// window.
func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok || time.Now().After(b.resetAt) {
		return rl.limit
	}
	return rl.limit - b.used
}

// bucketFor returns the key's current-window bucket, starting a fresh
// window when the previous one has lapsed. Caller holds the lock.
func (rl *RateLimiter) bucketFor(key string) *bucket {
	now := time.Now()
	b, ok := rl.buckets[key]
	if !ok || now.After(b.resetAt) {
		b = &bucket{resetAt: now.Add(rl.window)}
		rl.buckets[key] = b
	}
	return b
}

func rateLimitExceeded(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "RATE_LIMIT_EXCEEDED",
			"message": "Too many requests. Please try again later.",
		},
	})
}

// RateLimit limits by client IP and advertises the budget in
// X-RateLimit-Limit and X-RateLimit-Remaining.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !limiter.Allow(key) {
			rateLimitExceeded(c)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}

// RateLimitByKey limits using a caller-supplied key, e.g. the login
// limiter's "auth:"-prefixed client IP.
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(keyFunc(c)) {
			rateLimitExceeded(c)
			return
		}
		c.Next()
	}
}
