package types

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IngredientInput is one ingredient entry in a recipe payload.
type IngredientInput struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
}

// RecipePayload is the body of POST /recipes and PUT /recipes/:title.
// Title, instructions and ingredients are required but may be empty;
// pointer fields distinguish "absent" from "present and zero" so that an
// empty ingredient list is still a valid payload.
type RecipePayload struct {
	Title        *string            `json:"title" binding:"required"`
	Description  string             `json:"description"`
	Instructions *string            `json:"instructions" binding:"required"`
	Ingredients  *[]IngredientInput `json:"ingredients" binding:"required,dive"`
}
