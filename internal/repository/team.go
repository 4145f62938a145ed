package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team. A nil tx runs outside any transaction.
func (r *TeamRepository) Create(tx *gorm.DB, team *models.Team) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCode retrieves a team by its join code. Codes are stored uppercase.
func (r *TeamRepository) GetByCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembersAndSearch retrieves a team with members and discoverability settings
func (r *TeamRepository) GetWithMembersAndSearch(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").Preload("Search").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetDiscoverable retrieves teams whose search status is discoverable,
// newest first, with members preloaded for the in-process capacity re-check
func (r *TeamRepository) GetDiscoverable() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_searches ON team_searches.team_id = teams.id").
		Where("team_searches.status = ?", models.TeamSearchStatusDiscoverable).
		Preload("Members").
		Preload("Search").
		Order("teams.created_at DESC").
		Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team. A nil tx runs outside any transaction.
func (r *TeamRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Delete(&models.Team{}, "id = ?", id).Error
}

// GetMemberCount returns the number of users on a team
func (r *TeamRepository) GetMemberCount(teamID uuid.UUID) (int64, error) {
	return r.CountMembers(nil, teamID)
}

// CountMembers counts users on a team. A nil tx runs outside any transaction.
func (r *TeamRepository) CountMembers(tx *gorm.DB, teamID uuid.UUID) (int64, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var count int64
	err := db.Model(&models.User{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Transaction runs fn inside a single database transaction
func (r *TeamRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
