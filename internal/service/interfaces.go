package service

import (
	"context"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	GetUserTeam(userID uuid.UUID) (*TeamResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	Join(ctx context.Context, userID uuid.UUID, req *JoinTeamRequest) (*TeamResponse, error)
	Leave(ctx context.Context, userID uuid.UUID, teamID uuid.UUID) (*TeamResponse, error)
	Rename(userID uuid.UUID, teamID uuid.UUID, req *RenameTeamRequest) (*TeamResponse, error)
	RemoveMember(ctx context.Context, userID uuid.UUID, teamID uuid.UUID, targetUserID uuid.UUID) error
	Delete(ctx context.Context, userID uuid.UUID, teamID uuid.UUID) error
	UpdateSearch(userID uuid.UUID, teamID uuid.UUID, req *UpdateTeamSearchRequest) (*TeamSearchResponse, error)
	GetDiscoverableTeams() ([]DiscoverableTeamResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	EnsureUser(claims *auth.AuthClaims) (*UserResponse, error)
	GetMe(userID uuid.UUID) (*UserResponse, error)
	SyncPendingMetadata(ctx context.Context, callerID uuid.UUID, limit int) (int, error)
}

// ApplicationServiceInterface defines the interface for application service
type ApplicationServiceInterface interface {
	GetMyApplication(userID uuid.UUID) (*models.Application, error)
	SaveApplication(userID uuid.UUID, req *SaveApplicationRequest) (*models.Application, error)
	SubmitApplication(userID uuid.UUID) (*models.Application, error)
	ListApplications(callerID uuid.UUID, status models.ApplicationStatus, page, pageSize int) (*ApplicationListResponse, error)
	DecideApplication(callerID uuid.UUID, targetUserID uuid.UUID, req *DecideApplicationRequest) error
}

// PreferencesServiceInterface defines the interface for preferences service
type PreferencesServiceInterface interface {
	GetMyPreferences(userID uuid.UUID) (*models.Preferences, error)
	SavePreferences(userID uuid.UUID, req *SavePreferencesRequest) (*models.Preferences, error)
}
