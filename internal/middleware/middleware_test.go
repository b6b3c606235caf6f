package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/spiceroutes/spiceroutes-api/internal/session"
	"gorm.io/gorm"
)

func TestRequireAuthBlocksAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	downstreamCalled := false
	router := gin.New()
	protected := router.Group("/api/spices")
	protected.Use(RequireAuth())
	protected.GET("", func(c *gin.Context) {
		downstreamCalled = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/spices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, downstreamCalled, "downstream handler must not run without a session")
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireAuthPassesWithSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	manager := session.NewManager(store, false)
	sess := &session.Session{ID: "sid", UserID: 11, CreatedAt: time.Now().UTC()}
	require.NoError(t, store.Save(context.Background(), sess))

	router := gin.New()
	router.Use(manager.Middleware())
	protected := router.Group("/api/spices")
	protected.Use(RequireAuth())
	protected.GET("", func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})

	req := httptest.NewRequest("GET", "/api/spices", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "11")
}

func TestRateLimiterEnforcesCeilingPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(3, time.Minute)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	// First three requests pass, the fourth is rejected.
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// A different client in the same window is unaffected.
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimiter429Body(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, time.Minute)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if i == 1 {
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
			assert.Contains(t, w.Body.String(), "Too many requests from this IP")
		}
	}
}

func TestErrorHandlerMapsRecordNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/missing", func(c *gin.Context) {
		c.Error(gorm.ErrRecordNotFound)
	})

	req := httptest.NewRequest("GET", "/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestErrorHandlerHidesInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("connection string postgres://user:hunter2@db failed"))
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestRequestLoggerDoesNotAlterResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest("GET", "/ok", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
