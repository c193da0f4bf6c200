package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plateful/recipebook/internal/models"
)

// GORMRecipeRepository is a GORM implementation of RecipeRepository.
type GORMRecipeRepository struct {
	db *gorm.DB
}

// NewGORMRecipeRepository creates a new instance of GORMRecipeRepository.
func NewGORMRecipeRepository(db *gorm.DB) *GORMRecipeRepository {
	return &GORMRecipeRepository{db: db}
}

// Create inserts the recipe row and one ingredient row per entry as a single
// atomic unit. Either all rows persist or none do.
func (r *GORMRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "User").Create(recipe).Error; err != nil {
			return fmt.Errorf("failed to create recipe %q: %w", recipe.Title, err)
		}
		for i := range recipe.Ingredients {
			ing := &recipe.Ingredients[i]
			if ing.ID == uuid.Nil {
				ing.ID = uuid.New()
			}
			ing.RecipeID = recipe.ID
			if err := tx.Create(ing).Error; err != nil {
				return fmt.Errorf("failed to create ingredient %q: %w", ing.Name, err)
			}
		}
		return nil
	})
}

// GetByTitle does an exact-match lookup, eagerly loading the ingredient list
// and the owning user.
func (r *GORMRecipeRepository) GetByTitle(ctx context.Context, title string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("User").
		Where("title = ?", title).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe by title %q: %w", title, err)
	}
	return &recipe, nil
}

// List returns one page of recipes plus pagination metadata. A non-empty
// search restricts results to recipes whose title contains the text or that
// have at least one matching ingredient name, case-insensitively. Results are
// ordered by creation time (id breaks ties) so pages are reproducible.
func (r *GORMRecipeRepository) List(ctx context.Context, page, perPage int, search string) ([]models.Recipe, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	base := r.db.WithContext(ctx).Model(&models.Recipe{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.Where(
			"LOWER(title) LIKE ? OR id IN (?)",
			like,
			r.db.Model(&models.Ingredient{}).Select("recipe_id").Where("LOWER(name) LIKE ?", like),
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count recipes: %w", err)
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	var recipes []models.Recipe
	err := base.Session(&gorm.Session{}).
		Preload("Ingredients").
		Preload("User").
		Order("created_at, id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&recipes).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	meta := &Pagination{Page: page, Pages: pages, PerPage: perPage, Total: total}
	return recipes, meta, nil
}

// ListByUser returns all recipes owned by the given user, oldest first.
func (r *GORMRecipeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes for user %s: %w", userID, err)
	}
	return recipes, nil
}

// Update overwrites title, description and instructions and fully replaces
// the ingredient set: all prior ingredient rows are deleted before the new
// set is inserted. The whole operation commits as one transaction, so an
// ownership denial or any write failure leaves the recipe untouched.
func (r *GORMRecipeRepository) Update(ctx context.Context, title string, updated *models.Recipe, requester uuid.UUID) (*models.Recipe, error) {
	var out *models.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Preload("User").Where("title = ?", title).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to get recipe by title %q: %w", title, err)
		}
		if !recipe.OwnedBy(requester) {
			return ErrNotOwner
		}

		fields := map[string]interface{}{
			"title":        updated.Title,
			"description":  updated.Description,
			"instructions": updated.Instructions,
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to update recipe %q: %w", title, err)
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return fmt.Errorf("failed to clear ingredients for recipe %q: %w", title, err)
		}
		for i := range updated.Ingredients {
			ing := &updated.Ingredients[i]
			ing.ID = uuid.New()
			ing.RecipeID = recipe.ID
			if err := tx.Create(ing).Error; err != nil {
				return fmt.Errorf("failed to create ingredient %q: %w", ing.Name, err)
			}
		}

		recipe.Title = updated.Title
		recipe.Description = updated.Description
		recipe.Instructions = updated.Instructions
		recipe.Ingredients = updated.Ingredients
		out = &recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the recipe and all its ingredient rows atomically and
// returns the recipe as it was immediately before deletion.
func (r *GORMRecipeRepository) Delete(ctx context.Context, title string, requester uuid.UUID) (*models.Recipe, error) {
	var out *models.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Preload("Ingredients").Preload("User").Where("title = ?", title).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to get recipe by title %q: %w", title, err)
		}
		if !recipe.OwnedBy(requester) {
			return ErrNotOwner
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return fmt.Errorf("failed to delete ingredients for recipe %q: %w", title, err)
		}
		if err := tx.Delete(&models.Recipe{}, "id = ?", recipe.ID).Error; err != nil {
			return fmt.Errorf("failed to delete recipe %q: %w", title, err)
		}

		out = &recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetImageURL stores the public image URL on the recipe, owner only.
func (r *GORMRecipeRepository) SetImageURL(ctx context.Context, title, imageURL string, requester uuid.UUID) (*models.Recipe, error) {
	var out *models.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Preload("Ingredients").Preload("User").Where("title = ?", title).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to get recipe by title %q: %w", title, err)
		}
		if !recipe.OwnedBy(requester) {
			return ErrNotOwner
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Update("image_url", imageURL).Error; err != nil {
			return fmt.Errorf("failed to set image url for recipe %q: %w", title, err)
		}
		recipe.ImageURL = imageURL
		out = &recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
