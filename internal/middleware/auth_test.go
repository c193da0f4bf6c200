package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/recipebook/internal/middleware"
	"github.com/plateful/recipebook/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*types.TokenClaims, error) {
	return s.claims, s.err
}

func newProtectedEngine(validator middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", middleware.AuthMiddleware(validator), func(c *gin.Context) {
		userID, _ := c.Get(middleware.ContextUserID)
		username, _ := c.Get(middleware.ContextUsername)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  userID,
			"username": username,
		})
	})
	return engine
}

func doProtected(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	engine := newProtectedEngine(&stubValidator{})

	w := doProtected(engine, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing authorization header")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	engine := newProtectedEngine(&stubValidator{})

	for _, header := range []string{"token-without-scheme", "Basic abc123"} {
		w := doProtected(engine, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	engine := newProtectedEngine(&stubValidator{err: errors.New("expired")})

	w := doProtected(engine, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	userID := uuid.New()
	engine := newProtectedEngine(&stubValidator{claims: &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
		UserID:           userID,
		Username:         "alice",
	}})

	w := doProtected(engine, "Bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "alice")
}
