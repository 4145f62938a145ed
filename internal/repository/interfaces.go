package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	GetByApplicationStatus(status models.ApplicationStatus, limit, offset int) ([]models.User, int64, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	SetTeamID(tx *gorm.DB, userID uuid.UUID, teamID *uuid.UUID) error
	SetApplicationStatus(userID uuid.UUID, status models.ApplicationStatus) error
	MarkMetadataSynced(userID uuid.UUID) error
	GetMetadataSyncPending(limit int) ([]models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(tx *gorm.DB, team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByCode(code string) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetWithMembersAndSearch(id uuid.UUID) (*models.Team, error)
	GetDiscoverable() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	GetMemberCount(teamID uuid.UUID) (int64, error)
	CountMembers(tx *gorm.DB, teamID uuid.UUID) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
}

// TeamSearchRepositoryInterface defines the interface for team search repository operations
type TeamSearchRepositoryInterface interface {
	Create(tx *gorm.DB, search *models.TeamSearch) error
	GetByTeamID(teamID uuid.UUID) (*models.TeamSearch, error)
	Update(search *models.TeamSearch) error
	Delete(tx *gorm.DB, teamID uuid.UUID) error
	SetStatus(tx *gorm.DB, teamID uuid.UUID, status models.TeamSearchStatus) error
}

// ApplicationRepositoryInterface defines the interface for application repository operations
type ApplicationRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.Application, error)
	Upsert(application *models.Application) error
}

// PreferencesRepositoryInterface defines the interface for preferences repository operations
type PreferencesRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.Preferences, error)
	Upsert(preferences *models.Preferences) error
}
