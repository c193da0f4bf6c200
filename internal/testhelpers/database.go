package testhelpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/plateful/recipebook/internal/models"
	"github.com/plateful/recipebook/internal/service"
)

// TestJWTSecret signs tokens in tests.
const TestJWTSecret = "test-secret"

// SetupTestDatabase creates a fresh in-memory SQLite database with the full
// schema migrated.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Ingredient{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// CreateTestUser registers a user and returns it with a valid bearer token.
func CreateTestUser(t *testing.T, db *gorm.DB, username, password string) (*models.User, string) {
	t.Helper()

	auth := service.NewAuthService(db, TestJWTSecret)
	user, err := auth.Register(context.Background(), username, password)
	require.NoError(t, err, "failed to register test user")

	token, err := auth.GenerateToken(user)
	require.NoError(t, err, "failed to generate test token")

	return user, token
}
