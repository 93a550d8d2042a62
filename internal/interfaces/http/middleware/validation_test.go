package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type bindTarget struct {
	Name  string `json:"name" binding:"required,min=2"`
	Email string `json:"email" binding:"omitempty,email"`
}

func bindEngine() *gin.Engine {
	engine := gin.New()
	engine.POST("/bind", func(c *gin.Context) {
		var req bindTarget
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, ValidationMessage(err))
			return
		}
		c.Status(http.StatusOK)
	})
	return engine
}

func TestValidationMessage(t *testing.T) {
	SetupValidator()

	t.Run("uses json field names", func(t *testing.T) {
		engine := bindEngine()

		req := httptest.NewRequest("POST", "/bind", strings.NewReader(`{"name":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "name: must be at least 2 characters", w.Body.String())
	})

	t.Run("joins multiple failures", func(t *testing.T) {
		engine := bindEngine()

		req := httptest.NewRequest("POST", "/bind", strings.NewReader(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), "name: this field is required")
		assert.Contains(t, w.Body.String(), "email: invalid email format")
	})

	t.Run("passes through non-validator errors", func(t *testing.T) {
		engine := bindEngine()

		req := httptest.NewRequest("POST", "/bind", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, w.Body.String())
	})
}
