package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwwwRyan/coverletter-gen/internal/auth"
	"github.com/AwwwRyan/coverletter-gen/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/rid", func(c *gin.Context) {
		c.String(http.StatusOK, logging.RequestID(c.Request.Context()))
	})

	t.Run("echoes incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rid", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("generates a uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rid", nil))
		rid := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(rid)
		require.NoError(t, err)
		assert.Equal(t, rid, w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRecovery_LogsWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, "info", "test"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := gin.New()
	r.Use(Recovery(), RequestIDMiddleware())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "rid-panic")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var found map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var line map[string]any
		if json.Unmarshal([]byte(raw), &line) == nil && line["operation"] == "recovery" {
			found = line
		}
	}
	require.NotNil(t, found, "recovery log line")
	assert.Equal(t, "rid-panic", found["request_id"])
	assert.Equal(t, "ERROR", found["level"])
	assert.Contains(t, found["msg"], "kaboom")
}

func TestUserRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(auth.DevIdentity())
	r.POST("/generate", NewUserRateLimiter(1, 2).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(uid string) int {
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("X-User-Id", uid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("u1"))
	assert.Equal(t, http.StatusOK, call("u1"))
	assert.Equal(t, http.StatusTooManyRequests, call("u1"), "burst exhausted")
	assert.Equal(t, http.StatusOK, call("u2"), "buckets are per user")
}

func bucketCount(l *UserRateLimiter) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func TestUserRateLimiter_EvictsIdleBuckets(t *testing.T) {
	l := NewUserRateLimiter(60, 5)
	clock := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	l.lastSweep = clock

	l.limiter("u1")
	l.limiter("u2")
	require.Equal(t, 2, bucketCount(l))

	clock = clock.Add(l.idleTTL / 2)
	l.limiter("u2")
	assert.Equal(t, 2, bucketCount(l), "no sweep before the idle window passes")

	clock = clock.Add(l.idleTTL/2 + time.Second)
	l.limiter("u3")
	assert.Equal(t, 2, bucketCount(l), "u1 idle past the window is dropped")

	l.mu.Lock()
	_, hasU1 := l.buckets["u1"]
	_, hasU2 := l.buckets["u2"]
	l.mu.Unlock()
	assert.False(t, hasU1)
	assert.True(t, hasU2)
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.POST("/api/generate", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
