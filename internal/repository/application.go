package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// GetByUserID retrieves a user's application
func (r *ApplicationRepository) GetByUserID(userID uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// Upsert creates or replaces a user's application row
func (r *ApplicationRepository) Upsert(application *models.Application) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(application).Error
}
