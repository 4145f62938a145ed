package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferencesRepository handles database operations for onboarding preferences
type PreferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// GetByUserID retrieves a user's preferences
func (r *PreferencesRepository) GetByUserID(userID uuid.UUID) (*models.Preferences, error) {
	var preferences models.Preferences
	err := r.db.First(&preferences, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &preferences, nil
}

// Upsert creates or replaces a user's preferences row
func (r *PreferencesRepository) Upsert(preferences *models.Preferences) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(preferences).Error
}
