package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can own recipes. Usernames are immutable after
// registration and unique across the store.
type User struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
}
