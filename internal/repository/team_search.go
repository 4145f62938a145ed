package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSearchRepository handles database operations for team discoverability settings
type TeamSearchRepository struct {
	db *gorm.DB
}

// NewTeamSearchRepository creates a new team search repository
func NewTeamSearchRepository(db *gorm.DB) *TeamSearchRepository {
	return &TeamSearchRepository{db: db}
}

// Create creates a team search row. A nil tx runs outside any transaction.
func (r *TeamSearchRepository) Create(tx *gorm.DB, search *models.TeamSearch) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Create(search).Error
}

// GetByTeamID retrieves the search row for a team
func (r *TeamSearchRepository) GetByTeamID(teamID uuid.UUID) (*models.TeamSearch, error) {
	var search models.TeamSearch
	err := r.db.First(&search, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &search, nil
}

// Update updates a team search row
func (r *TeamSearchRepository) Update(search *models.TeamSearch) error {
	return r.db.Save(search).Error
}

// Delete removes the search row for a team. A nil tx runs outside any transaction.
func (r *TeamSearchRepository) Delete(tx *gorm.DB, teamID uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Delete(&models.TeamSearch{}, "team_id = ?", teamID).Error
}

// SetStatus sets the discoverability status. A nil tx runs outside any transaction.
func (r *TeamSearchRepository) SetStatus(tx *gorm.DB, teamID uuid.UUID, status models.TeamSearchStatus) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Model(&models.TeamSearch{}).Where("team_id = ?", teamID).
		Update("status", status).Error
}
