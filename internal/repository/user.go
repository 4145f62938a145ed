package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByTeamID retrieves all users on a team
func (r *UserRepository) GetByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id = ?", teamID).Find(&users).Error
	return users, err
}

// GetByApplicationStatus retrieves users by application status with pagination
func (r *UserRepository) GetByApplicationStatus(status models.ApplicationStatus, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).Where("application_status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SetTeamID sets or clears a user's team affiliation. The write also resets
// metadata_synced_at so the identity mirror is re-driven after commit.
// A nil tx runs outside any transaction.
func (r *UserRepository) SetTeamID(tx *gorm.DB, userID uuid.UUID, teamID *uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"team_id":            teamID,
			"metadata_synced_at": nil,
		}).Error
}

// SetApplicationStatus updates a user's application status
func (r *UserRepository) SetApplicationStatus(userID uuid.UUID, status models.ApplicationStatus) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("application_status", status).Error
}

// MarkMetadataSynced stamps the identity mirror as up to date for a user
func (r *UserRepository) MarkMetadataSynced(userID uuid.UUID) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("metadata_synced_at", gorm.Expr("NOW()")).Error
}

// GetMetadataSyncPending retrieves users whose identity mirror write is pending
func (r *UserRepository) GetMetadataSyncPending(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("metadata_synced_at IS NULL").Limit(limit).Find(&users).Error
	return users, err
}
