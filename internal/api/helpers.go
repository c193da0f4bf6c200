package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/plateful/recipebook/internal/middleware"
)

// currentUser extracts the identity stored by the auth middleware.
func currentUser(c *gin.Context) (uuid.UUID, string, bool) {
	idVal, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return uuid.Nil, "", false
	}
	userID, ok := idVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	username, _ := c.Get(middleware.ContextUsername)
	name, _ := username.(string)
	return userID, name, true
}

// recipePayloadFields maps RecipePayload struct fields to their JSON names
// for missing-field reporting.
var recipePayloadFields = map[string]string{
	"Title":        "title",
	"Instructions": "instructions",
	"Ingredients":  "ingredients",
}

// missingRecipeFields returns the JSON names of required top-level recipe
// fields absent from the request, or nil when the error is something else.
func missingRecipeFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var missing []string
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			continue
		}
		if name, ok := recipePayloadFields[fe.Field()]; ok {
			missing = append(missing, name)
		}
	}
	return missing
}
