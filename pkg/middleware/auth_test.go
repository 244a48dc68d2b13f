package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amigdala/cms-backend/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func TestRequireAdmin_NoHeader(t *testing.T) {
	g := gin.New()
	g.GET("/", RequireAdmin(testSecret), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestRequireAdmin_InvalidHeader(t *testing.T) {
	g := gin.New()
	g.GET("/", RequireAdmin(testSecret), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "BadHeader")
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestRequireAdmin_BadToken(t *testing.T) {
	g := gin.New()
	g.GET("/", RequireAdmin(testSecret), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestRequireAdmin_WrongSecret(t *testing.T) {
	token, err := tokens.GenerateAccessToken("other-secret", "admin", "admin", time.Minute)
	require.NoError(t, err)

	g := gin.New()
	g.GET("/", RequireAdmin(testSecret), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestRequireAdmin_ExpiredToken(t *testing.T) {
	token, err := tokens.GenerateAccessToken(testSecret, "admin", "admin", -time.Minute)
	require.NoError(t, err)

	g := gin.New()
	g.GET("/", RequireAdmin(testSecret), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestRequireAdmin_NonAdminRole(t *testing.T) {
	token, err := tokens.GenerateAccessToken(testSecret, "viewer", "viewer", time.Minute)
	require.NoError(t, err)

	g := gin.New()
	g.GET("/", RequireAdmin(testSecret), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)

	require.Equal(t, http.StatusForbidden, rw.Code)
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	token, err := tokens.GenerateAccessToken(testSecret, "admin", "admin", time.Minute)
	require.NoError(t, err)

	g := gin.New()
	g.GET("/", RequireAdmin(testSecret), func(c *gin.Context) {
		claims, ok := c.Get("claims")
		require.True(t, ok)
		resp, _ := json.Marshal(gin.H{"claims": claims})
		c.Writer.Write(resp)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &got))
	claims, ok := got["claims"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "admin", claims["username"])
	require.Equal(t, "admin", claims["role"])
}
