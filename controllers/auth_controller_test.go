package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Binding failures short-circuit before the store is touched.
func TestRegisterRequiresAllFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := &AuthController{}

	bodies := []string{
		`{}`,
		`{"email":"a@b.com","password":"secret1","phone":"1","address":"x"}`,
		`{"name":"n","password":"secret1","phone":"1","address":"x"}`,
		`{"name":"n","email":"not-an-email","password":"secret1","phone":"1","address":"x"}`,
		`{"name":"n","email":"a@b.com","password":"short","phone":"1"}`,
	}

	for _, body := range bodies {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		ctrl.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s must be rejected", body)
		assert.Contains(t, w.Body.String(), "All fields are required")
	}
}
