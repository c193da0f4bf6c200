package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/recipebook/internal/repository"
	"github.com/plateful/recipebook/internal/service"
	"github.com/plateful/recipebook/internal/types"
)

func strPtr(s string) *string { return &s }

func soupPayload() *types.RecipePayload {
	return &types.RecipePayload{
		Title:        strPtr("Soup"),
		Description:  "warm",
		Instructions: strPtr("boil water"),
		Ingredients:  &[]types.IngredientInput{{Name: "water", Quantity: "1l"}},
	}
}

func TestCreateRecipeBindsOwner(t *testing.T) {
	repo := repository.NewMockRecipeRepository()
	svc := service.NewRecipeService(repo, nil)
	owner := uuid.New()

	recipe, err := svc.CreateRecipe(context.Background(), soupPayload(), owner, "alice")
	require.NoError(t, err)

	assert.Equal(t, owner, recipe.UserID)
	assert.Equal(t, "alice", recipe.User.Username)
	assert.Equal(t, "Soup", recipe.Title)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "water", recipe.Ingredients[0].Name)
	assert.Equal(t, "1l", recipe.Ingredients[0].Quantity)

	stored, err := repo.GetByTitle(context.Background(), "Soup")
	require.NoError(t, err)
	assert.Equal(t, owner, stored.UserID)
}

func TestCreateRecipeAcceptsEmptyIngredients(t *testing.T) {
	repo := repository.NewMockRecipeRepository()
	svc := service.NewRecipeService(repo, nil)

	payload := soupPayload()
	payload.Ingredients = &[]types.IngredientInput{}

	recipe, err := svc.CreateRecipe(context.Background(), payload, uuid.New(), "alice")
	require.NoError(t, err)
	assert.Empty(t, recipe.Ingredients)
}

func TestUpdateRecipePropagatesOwnership(t *testing.T) {
	repo := repository.NewMockRecipeRepository()
	svc := service.NewRecipeService(repo, nil)
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.CreateRecipe(ctx, soupPayload(), owner, "alice")
	require.NoError(t, err)

	payload := soupPayload()
	payload.Instructions = strPtr("simmer gently")
	_, err = svc.UpdateRecipe(ctx, "Soup", payload, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotOwner)

	updated, err := svc.UpdateRecipe(ctx, "Soup", payload, owner)
	require.NoError(t, err)
	assert.Equal(t, "simmer gently", updated.Instructions)
}

func TestDeleteRecipeReturnsDeletedState(t *testing.T) {
	repo := repository.NewMockRecipeRepository()
	svc := service.NewRecipeService(repo, nil)
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.CreateRecipe(ctx, soupPayload(), owner, "alice")
	require.NoError(t, err)

	deleted, err := svc.DeleteRecipe(ctx, "Soup", owner)
	require.NoError(t, err)
	assert.Equal(t, "Soup", deleted.Title)
	require.Len(t, deleted.Ingredients, 1)

	_, err = svc.GetRecipeByTitle(ctx, "Soup")
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestAttachImageWithoutStorage(t *testing.T) {
	repo := repository.NewMockRecipeRepository()
	svc := service.NewRecipeService(repo, nil)
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.CreateRecipe(ctx, soupPayload(), owner, "alice")
	require.NoError(t, err)

	_, err = svc.AttachImage(ctx, "Soup", []byte("png bytes"), "image/png", owner)
	assert.ErrorIs(t, err, service.ErrNoImageStorage)
}

func TestListRecipesPassesThroughMetadata(t *testing.T) {
	repo := repository.NewMockRecipeRepository()
	svc := service.NewRecipeService(repo, nil)
	ctx := context.Background()
	owner := uuid.New()

	for _, title := range []string{"Soup", "Stew", "Salad"} {
		payload := soupPayload()
		payload.Title = strPtr(title)
		_, err := svc.CreateRecipe(ctx, payload, owner, "alice")
		require.NoError(t, err)
	}

	items, meta, err := svc.ListRecipes(ctx, 1, 2, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, meta.Pages)
	assert.EqualValues(t, 3, meta.Total)
}
