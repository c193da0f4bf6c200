package types

import (
	"github.com/google/uuid"

	"github.com/plateful/recipebook/internal/models"
)

// IngredientView is the wire shape of one ingredient.
type IngredientView struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// RecipeView is the wire shape of a recipe, with its ingredient list fully
// materialized.
type RecipeView struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Instructions string           `json:"instructions"`
	Ingredients  []IngredientView `json:"ingredients"`
	ImageURL     string           `json:"image_url,omitempty"`
	CreatedBy    string           `json:"created_by,omitempty"`
}

// NewRecipeView maps a persisted recipe to its response shape.
func NewRecipeView(recipe *models.Recipe) RecipeView {
	ingredients := make([]IngredientView, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, IngredientView{Name: ing.Name, Quantity: ing.Quantity})
	}
	return RecipeView{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		Instructions: recipe.Instructions,
		Ingredients:  ingredients,
		ImageURL:     recipe.ImageURL,
		CreatedBy:    recipe.User.Username,
	}
}

// NewRecipeViews maps a page of recipes.
func NewRecipeViews(recipes []models.Recipe) []RecipeView {
	views := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, NewRecipeView(&recipes[i]))
	}
	return views
}
