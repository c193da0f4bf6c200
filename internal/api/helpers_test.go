package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/plateful/recipebook/config"
	"github.com/plateful/recipebook/internal/api"
	"github.com/plateful/recipebook/internal/repository"
	"github.com/plateful/recipebook/internal/router"
	"github.com/plateful/recipebook/internal/service"
	"github.com/plateful/recipebook/internal/testhelpers"
)

// setupTestServer wires the full HTTP stack against an in-memory database,
// without Redis or object storage.
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	logger := zap.NewNop()

	authService := service.NewAuthService(db, testhelpers.TestJWTSecret)
	recipeRepo := repository.NewGORMRecipeRepository(db)
	recipeService := service.NewRecipeService(recipeRepo, nil)

	cfg := &config.Config{
		JWTSecret:   testhelpers.TestJWTSecret,
		CORSOrigins: []string{"http://localhost:5173"},
	}

	engine := router.SetupRouter(
		cfg,
		logger,
		api.NewAuthHandler(authService, logger),
		api.NewRecipeHandler(recipeService, logger),
		api.NewProfileHandler(recipeService, logger),
		authService,
		nil,
	)
	return engine, db
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func recipeBody(title string, ingredients ...map[string]any) map[string]any {
	if ingredients == nil {
		ingredients = []map[string]any{}
	}
	return map[string]any{
		"title":        title,
		"description":  "a description",
		"instructions": "do the thing",
		"ingredients":  ingredients,
	}
}
