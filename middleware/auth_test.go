package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"house-of-rahaa/config"
	"house-of-rahaa/utils"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/secure", func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	r := newProtectedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Login Required")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	r := newProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Token or Session Expired")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	r := newProtectedRouter()

	token, err := utils.GenerateToken("64f1b2a3c4d5e6f708091a0b")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "64f1b2a3c4d5e6f708091a0b")
}

func TestAuthMiddlewareAcceptsBearerPrefix(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	r := newProtectedRouter()

	token, err := utils.GenerateToken("64f1b2a3c4d5e6f708091a0b")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// newAdminRouter mounts AdminMiddleware alone, with the context seeding that
// AuthMiddleware would normally do replaced by the given handler.
func newAdminRouter(seed gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if seed != nil {
		r.Use(seed)
	}
	r.Use(AdminMiddleware())
	r.GET("/vault", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func TestAdminMiddlewareMissingIdentity(t *testing.T) {
	r := newAdminRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vault", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid session identity")
	assert.NotContains(t, w.Body.String(), "ok")
}

func TestAdminMiddlewareMalformedIdentity(t *testing.T) {
	r := newAdminRouter(func(c *gin.Context) {
		c.Set("user_id", "not-an-object-id")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vault", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid session identity")
}

func TestAdminMiddlewareRejectsNonAdminRole(t *testing.T) {
	t.Skip("Integration test - requires MongoDB")

	// A signed-in user whose stored role is not admin must get 401
	// "Gallery vault is temporarily locked" and the handler must not run.
	// The role comes from a fresh lookup, so a demoted admin is rejected
	// even while holding a still-valid token.
}
