package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Run("grants the full budget", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute)

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("10.0.0.1"), "request %d", i+1)
		}
		assert.False(t, limiter.Allow("10.0.0.1"), "budget exhausted")
	})

	t.Run("budgets are per key", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))

		assert.True(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("a new window restores the budget", func(t *testing.T) {
		limiter := NewRateLimiter(2, 40*time.Millisecond)

		assert.True(t, limiter.Allow("10.0.0.3"))
		assert.True(t, limiter.Allow("10.0.0.3"))
		assert.False(t, limiter.Allow("10.0.0.3"))

		time.Sleep(50 * time.Millisecond)

		assert.True(t, limiter.Allow("10.0.0.3"))
	})

	t.Run("Remaining tracks consumption", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute)

		assert.Equal(t, 5, limiter.Remaining("fresh"))
		limiter.Allow("fresh")
		limiter.Allow("fresh")
		assert.Equal(t, 3, limiter.Remaining("fresh"))
	})

	t.Run("stays exact under concurrency", func(t *testing.T) {
		limiter := NewRateLimiter(100, time.Minute)
		var wg sync.WaitGroup
		var allowed atomic.Int64

		for i := 0; i < 150; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("shared") {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(100), allowed.Load())
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("advertises the budget in headers", func(t *testing.T) {
		limiter := NewRateLimiter(3, time.Minute)
		r := gin.New()
		r.Use(RateLimit(limiter))
		r.GET("/api/students", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/students", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("returns 429 past the limit", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute)
		r := gin.New()
		r.Use(RateLimit(limiter))
		r.GET("/api/students", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/api/students", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/students", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
	})
}

func TestRateLimitByKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	r := gin.New()
	r.Use(RateLimitByKey(limiter, func(c *gin.Context) string {
		return c.GetHeader("X-API-Key")
	}))
	r.GET("/api/summary/dashboard", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	get := func(key string) int {
		req := httptest.NewRequest("GET", "/api/summary/dashboard", nil)
		req.Header.Set("X-API-Key", key)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, get("key-a"))
	assert.Equal(t, http.StatusTooManyRequests, get("key-a"))
	assert.Equal(t, http.StatusOK, get("key-b"), "other keys keep their own budget")
}

// authKeyFunc mirrors the login route guard: per-IP keys under an "auth:"
// prefix so the login limiter never shares buckets with the global one.
func authKeyFunc(c *gin.Context) string {
	return "auth:" + c.ClientIP()
}

func TestLoginRateLimiting(t *testing.T) {
	gin.SetMode(gin.TestMode)

	loginRouter := func(limiter *RateLimiter) *gin.Engine {
		r := gin.New()
		r.Use(RateLimitByKey(limiter, authKeyFunc))
		r.POST("/login", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
		return r
	}

	postLogin := func(r *gin.Engine, addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("allows attempts within limit", func(t *testing.T) {
		r := loginRouter(NewRateLimiter(5, time.Minute))

		for i := 0; i < 5; i++ {
			w := postLogin(r, "192.168.1.100:12345")
			assert.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
		}
	})

	t.Run("returns 429 when attempts exceed limit", func(t *testing.T) {
		r := loginRouter(NewRateLimiter(3, time.Minute))

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, postLogin(r, "192.168.1.100:12345").Code)
		}

		w := postLogin(r, "192.168.1.100:12345")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
	})

	t.Run("separate limits per IP address", func(t *testing.T) {
		r := loginRouter(NewRateLimiter(2, time.Minute))

		assert.Equal(t, http.StatusOK, postLogin(r, "192.168.1.1:12345").Code)
		assert.Equal(t, http.StatusOK, postLogin(r, "192.168.1.1:12345").Code)
		assert.Equal(t, http.StatusTooManyRequests, postLogin(r, "192.168.1.1:12345").Code)

		assert.Equal(t, http.StatusOK, postLogin(r, "192.168.1.2:12345").Code)
	})

	t.Run("auth prefix isolates login buckets from the global limiter", func(t *testing.T) {
		globalLimiter := NewRateLimiter(100, time.Minute)
		authLimiter := NewRateLimiter(2, time.Minute)

		r := gin.New()
		authGroup := r.Group("/auth")
		authGroup.Use(RateLimitByKey(authLimiter, authKeyFunc))
		authGroup.POST("/login", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
		r.Use(RateLimit(globalLimiter))
		r.GET("/api/data", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"data": "test"})
		})

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("POST", "/auth/login", nil)
			req.RemoteAddr = "192.168.1.100:12345"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		// The blocked IP still has its full budget on ordinary routes.
		req = httptest.NewRequest("GET", "/api/data", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
