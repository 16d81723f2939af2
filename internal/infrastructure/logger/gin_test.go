package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs successful requests at info", func(t *testing.T) {
		l, logs := newObservedLogger(zapcore.InfoLevel)

		r := gin.New()
		r.Use(GinMiddleware(l))
		r.GET("/api/students", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		req := httptest.NewRequest("GET", "/api/students?search=ravi", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/api/students", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, "search=ravi", fields["query"])
	})

	t.Run("logs client errors at warn", func(t *testing.T) {
		l, logs := newObservedLogger(zapcore.InfoLevel)

		r := gin.New()
		r.Use(GinMiddleware(l))
		r.GET("/api/students/:id", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"success": false})
		})

		req := httptest.NewRequest("GET", "/api/students/unknown", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("logs server errors at error", func(t *testing.T) {
		l, logs := newObservedLogger(zapcore.InfoLevel)

		r := gin.New()
		r.Use(GinMiddleware(l))
		r.GET("/api/summary/dashboard", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		})

		req := httptest.NewRequest("GET", "/api/summary/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("propagates the request id into log entries", func(t *testing.T) {
		l, logs := newObservedLogger(zapcore.InfoLevel)

		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("request_id", "req-abc123")
			c.Next()
		})
		r.Use(GinMiddleware(l))
		r.GET("/api/years", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		req := httptest.NewRequest("GET", "/api/years", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "req-abc123", logs.All()[0].ContextMap()["request_id"])
	})

	t.Run("stores the request logger for downstream use", func(t *testing.T) {
		l, _ := newObservedLogger(zapcore.InfoLevel)

		var fromGin, fromCtx *zap.Logger
		r := gin.New()
		r.Use(GinMiddleware(l))
		r.GET("/api/health", func(c *gin.Context) {
			fromGin = GetGinLogger(c)
			fromCtx = FromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotNil(t, fromGin)
		assert.Same(t, fromGin, fromCtx)
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("turns panics into a logged 500", func(t *testing.T) {
		l, logs := newObservedLogger(zapcore.ErrorLevel)

		r := gin.New()
		r.Use(Recovery(l))
		r.GET("/boom", func(c *gin.Context) {
			panic("stats cache corrupted")
		})

		req := httptest.NewRequest("GET", "/boom", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "Panic recovered", entry.Message)
		assert.Equal(t, "stats cache corrupted", entry.ContextMap()["panic"])
	})

	t.Run("leaves normal requests alone", func(t *testing.T) {
		l, logs := newObservedLogger(zapcore.ErrorLevel)

		r := gin.New()
		r.Use(Recovery(l))
		r.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/ok", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, logs.Len())
	})
}

func TestGetGinLogger_OutsideRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, GetGinLogger(c))
}
