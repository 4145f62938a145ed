package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Preferences holds the onboarding choices of an accepted participant.
// MealChoices is a JSON object keyed by event day.
type Preferences struct {
	UserID              uuid.UUID       `json:"user_id" gorm:"type:uuid;primary_key"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	TShirtSize          string          `json:"tshirt_size" gorm:"size:5" validate:"omitempty,oneof=XS S M L XL XXL"`
	DietaryRestrictions string          `json:"dietary_restrictions" gorm:"size:500" validate:"max=500"`
	MealChoices         json.RawMessage `json:"meal_choices,omitempty" gorm:"type:jsonb"`
	Completed           bool            `json:"completed"`
}

// TableName returns the table name for Preferences
func (Preferences) TableName() string {
	return "preferences"
}
