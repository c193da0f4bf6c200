package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/plateful/recipebook/internal/models"
)

var (
	// ErrRecipeNotFound is returned when no recipe has the requested title.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrNotOwner is returned when a user tries to mutate a recipe they do
	// not own. It is an expected outcome, not a storage failure; callers map
	// it to a permission error.
	ErrNotOwner = errors.New("recipe does not belong to user")
)

// Pagination describes the page of results returned by List.
type Pagination struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// RecipeRepository defines transactional access to recipes and their
// ingredients. Every returned recipe carries its full ingredient list.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByTitle(ctx context.Context, title string) (*models.Recipe, error)
	List(ctx context.Context, page, perPage int, search string) ([]models.Recipe, *Pagination, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
	Update(ctx context.Context, title string, updated *models.Recipe, requester uuid.UUID) (*models.Recipe, error)
	Delete(ctx context.Context, title string, requester uuid.UUID) (*models.Recipe, error)
	SetImageURL(ctx context.Context, title, imageURL string, requester uuid.UUID) (*models.Recipe, error)
}
