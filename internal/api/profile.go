package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/plateful/recipebook/internal/service"
	"github.com/plateful/recipebook/internal/types"
)

// ProfileHandler serves the authenticated user's own view.
type ProfileHandler struct {
	recipes service.IRecipeService
	logger  *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(recipes service.IRecipeService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{recipes: recipes, logger: logger}
}

// RegisterRoutes registers the profile routes.
func (h *ProfileHandler) RegisterRoutes(router *gin.Engine, authRequired gin.HandlerFunc) {
	router.GET("/profile", authRequired, h.GetProfile)
}

// GetProfile handles GET /profile: the caller's username and recipes.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, username, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	recipes, err := h.recipes.ListUserRecipes(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list user recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching the profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"recipes":  types.NewRecipeViews(recipes),
	})
}
