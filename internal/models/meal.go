package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meal belongs to exactly one user. CreatedAt is caller-supplied and stored
// as a plain date; UpdatedAt is server-assigned. Deletes are hard deletes.
type Meal struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	IsOnDiet    bool           `gorm:"not null" json:"is_on_diet"`
	CreatedAt   datatypes.Date `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
