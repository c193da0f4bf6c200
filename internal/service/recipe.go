package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/plateful/recipebook/internal/models"
	"github.com/plateful/recipebook/internal/repository"
	"github.com/plateful/recipebook/internal/types"
)

// ErrNoImageStorage is returned when an image upload is requested but no
// object storage is configured.
var ErrNoImageStorage = errors.New("image storage is not configured")

// RecipeService implements the recipe workflow on top of the repository.
type RecipeService struct {
	repo   repository.RecipeRepository
	images *ImageService
}

// NewRecipeService creates a new RecipeService. images may be nil when object
// storage is not configured; image uploads then fail with ErrNoImageStorage.
func NewRecipeService(repo repository.RecipeRepository, images *ImageService) *RecipeService {
	return &RecipeService{repo: repo, images: images}
}

// CreateRecipe persists a new recipe bound to the owning user.
func (s *RecipeService) CreateRecipe(ctx context.Context, payload *types.RecipePayload, owner uuid.UUID, ownerName string) (*models.Recipe, error) {
	recipe := recipeFromPayload(payload)
	recipe.UserID = owner
	// Not persisted by Create; kept so the response can carry created_by
	// without a read-back.
	recipe.User = models.User{ID: owner, Username: ownerName}
	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipeByTitle looks a recipe up by its exact title.
func (s *RecipeService) GetRecipeByTitle(ctx context.Context, title string) (*models.Recipe, error) {
	return s.repo.GetByTitle(ctx, title)
}

// ListRecipes returns one page of recipes with pagination metadata.
func (s *RecipeService) ListRecipes(ctx context.Context, page, perPage int, search string) ([]models.Recipe, *repository.Pagination, error) {
	return s.repo.List(ctx, page, perPage, search)
}

// ListUserRecipes returns all recipes owned by the given user.
func (s *RecipeService) ListUserRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateRecipe replaces the stored recipe with the payload, owner only.
func (s *RecipeService) UpdateRecipe(ctx context.Context, title string, payload *types.RecipePayload, requester uuid.UUID) (*models.Recipe, error) {
	return s.repo.Update(ctx, title, recipeFromPayload(payload), requester)
}

// DeleteRecipe removes the recipe and its ingredients, owner only.
func (s *RecipeService) DeleteRecipe(ctx context.Context, title string, requester uuid.UUID) (*models.Recipe, error) {
	return s.repo.Delete(ctx, title, requester)
}

// AttachImage uploads the image to object storage and stores its public URL
// on the recipe, owner only.
func (s *RecipeService) AttachImage(ctx context.Context, title string, data []byte, contentType string, requester uuid.UUID) (*models.Recipe, error) {
	if s.images == nil {
		return nil, ErrNoImageStorage
	}
	imageURL, err := s.images.UploadRecipeImage(ctx, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload recipe image: %w", err)
	}
	return s.repo.SetImageURL(ctx, title, imageURL, requester)
}

func recipeFromPayload(payload *types.RecipePayload) *models.Recipe {
	recipe := &models.Recipe{
		Description: payload.Description,
	}
	if payload.Title != nil {
		recipe.Title = *payload.Title
	}
	if payload.Instructions != nil {
		recipe.Instructions = *payload.Instructions
	}
	if payload.Ingredients != nil {
		recipe.Ingredients = make([]models.Ingredient, 0, len(*payload.Ingredients))
		for _, ing := range *payload.Ingredients {
			recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
				Name:     ing.Name,
				Quantity: ing.Quantity,
			})
		}
	}
	return recipe
}
