package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is owned by exactly one user. The title is unique across the whole
// store and acts as the natural key for lookup, update and delete.
type Recipe struct {
	ID           uuid.UUID    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Title        string       `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Instructions string       `gorm:"type:text" json:"instructions"`
	ImageURL     string       `gorm:"size:255" json:"image_url,omitempty"`
	UserID       uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	User         User         `gorm:"foreignKey:UserID" json:"-"`
	Ingredients  []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

// OwnedBy reports whether the recipe belongs to the given user. Ownership is
// decided by owner id equality, not by comparing loaded entities.
func (r *Recipe) OwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}

// Ingredient lives and dies with its recipe; it is never addressed on its own.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"-"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	Name     string    `gorm:"size:120;not null" json:"name"`
	Quantity string    `gorm:"size:80" json:"quantity,omitempty"`
}
