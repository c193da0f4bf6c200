package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/plateful/recipebook/internal/models"
	"github.com/plateful/recipebook/internal/repository"
	"github.com/plateful/recipebook/internal/types"
)

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
}

// IRecipeService defines the interface for recipe operations.
type IRecipeService interface {
	CreateRecipe(ctx context.Context, payload *types.RecipePayload, owner uuid.UUID, ownerName string) (*models.Recipe, error)
	GetRecipeByTitle(ctx context.Context, title string) (*models.Recipe, error)
	ListRecipes(ctx context.Context, page, perPage int, search string) ([]models.Recipe, *repository.Pagination, error)
	ListUserRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, title string, payload *types.RecipePayload, requester uuid.UUID) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, title string, requester uuid.UUID) (*models.Recipe, error)
	AttachImage(ctx context.Context, title string, data []byte, contentType string, requester uuid.UUID) (*models.Recipe, error)
}
