package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/plateful/recipebook/internal/middleware"
	"github.com/plateful/recipebook/internal/repository"
	"github.com/plateful/recipebook/internal/service"
	"github.com/plateful/recipebook/internal/types"
)

// RecipeHandler serves the recipe CRUD surface.
type RecipeHandler struct {
	recipes service.IRecipeService
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, logger: logger}
}

// RegisterRoutes registers the recipe routes. Mutations require a bearer
// token; limiter is optional and applied to mutations only.
func (h *RecipeHandler) RegisterRoutes(router *gin.Engine, authRequired gin.HandlerFunc, limiter *middleware.RateLimiter) {
	guarded := []gin.HandlerFunc{authRequired}
	if limiter != nil {
		guarded = append(guarded, limiter.Middleware())
	}

	router.GET("/recipes", h.ListRecipes)
	router.GET("/recipes/:title", h.GetRecipe)
	router.POST("/recipes", append(guarded, h.CreateRecipe)...)
	router.PUT("/recipes/:title", append(guarded, h.UpdateRecipe)...)
	router.DELETE("/recipes/:title", append(guarded, h.DeleteRecipe)...)
	router.POST("/recipes/:title/image", append(guarded, h.UploadImage)...)
}

// ListRecipes handles GET /recipes?page=&per_page=&search=.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", 10)
	search := c.Query("search")

	recipes, meta, err := h.recipes.ListRecipes(c.Request.Context(), page, perPage, search)
	if err != nil {
		h.logger.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching the recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meta":    meta,
		"recipes": types.NewRecipeViews(recipes),
	})
}

// GetRecipe handles GET /recipes/:title.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	title := c.Param("title")
	recipe, err := h.recipes.GetRecipeByTitle(c.Request.Context(), title)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		h.logger.Error("failed to get recipe", zap.String("title", title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching the recipe"})
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeView(recipe))
}

// CreateRecipe handles POST /recipes.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	payload, ok := h.bindRecipePayload(c)
	if !ok {
		return
	}
	userID, username, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), payload, userID, username)
	if err != nil {
		h.logger.Error("failed to create recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully",
		"recipe":  types.NewRecipeView(recipe),
	})
}

// UpdateRecipe handles PUT /recipes/:title.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	payload, ok := h.bindRecipePayload(c)
	if !ok {
		return
	}
	userID, _, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	title := c.Param("title")
	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), title, payload, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		case errors.Is(err, repository.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only edit your own recipes"})
		default:
			h.logger.Error("failed to update recipe", zap.String("title", title), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating the recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"recipe":  types.NewRecipeView(recipe),
	})
}

// DeleteRecipe handles DELETE /recipes/:title.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	title := c.Param("title")
	recipe, err := h.recipes.DeleteRecipe(c.Request.Context(), title, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		case errors.Is(err, repository.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete your own recipes"})
		default:
			h.logger.Error("failed to delete recipe", zap.String("title", title), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while deleting the recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"recipe":  types.NewRecipeView(recipe),
	})
}

// UploadImage handles POST /recipes/:title/image.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing image file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read image file"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read image file"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")

	title := c.Param("title")
	recipe, err := h.recipes.AttachImage(c.Request.Context(), title, data, contentType, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoImageStorage):
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Image storage is not configured"})
		case errors.Is(err, repository.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		case errors.Is(err, repository.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only edit your own recipes"})
		default:
			h.logger.Error("failed to upload recipe image", zap.String("title", title), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while uploading the image"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": recipe.ImageURL})
}

// bindRecipePayload binds and validates the request body, answering 400 with
// the missing field names when required fields are absent.
func (h *RecipeHandler) bindRecipePayload(c *gin.Context) (*types.RecipePayload, bool) {
	var payload types.RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		if missing := missingRecipeFields(err); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields: " + strings.Join(missing, ", ")})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		}
		return nil, false
	}
	return &payload, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
