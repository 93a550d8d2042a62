package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(mw...)
	engine.POST("/echo", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})
	return engine
}

func TestRequestID(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		engine := newEngine(RequestID())

		req := httptest.NewRequest("GET", "/echo", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
	})

	t.Run("honors an incoming id", func(t *testing.T) {
		engine := newEngine(RequestID())

		req := httptest.NewRequest("GET", "/echo", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}

func TestCORS(t *testing.T) {
	cfg := CORSConfig{
		AllowOrigins: []string{"https://app.example.com"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}

	t.Run("allows a configured origin", func(t *testing.T) {
		engine := newEngine(CORSWithConfig(cfg))

		req := httptest.NewRequest("GET", "/echo", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ignores an unknown origin", func(t *testing.T) {
		engine := newEngine(CORSWithConfig(cfg))

		req := httptest.NewRequest("GET", "/echo", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight with 204", func(t *testing.T) {
		engine := newEngine(CORSWithConfig(cfg))

		req := httptest.NewRequest("OPTIONS", "/echo", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("rejects everything with the default empty whitelist", func(t *testing.T) {
		engine := newEngine(CORS())

		req := httptest.NewRequest("GET", "/echo", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSecure(t *testing.T) {
	engine := newEngine(Secure())

	req := httptest.NewRequest("GET", "/echo", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestBodyLimit(t *testing.T) {
	engine := newEngine(BodyLimit(16))

	t.Run("accepts small bodies", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/echo", strings.NewReader("tiny"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects oversized bodies", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/echo", strings.NewReader(strings.Repeat("x", 64)))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
