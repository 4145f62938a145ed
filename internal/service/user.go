package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	userRepo repository.UserRepositoryInterface
	identity identity.MetadataClient
	log      *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, identityClient identity.MetadataClient) *UserService {
	return &UserService{
		userRepo: userRepo,
		identity: identityClient,
		log:      logger.New(),
	}
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID                uuid.UUID                `json:"id"`
	Email             string                   `json:"email"`
	FirstName         string                   `json:"first_name"`
	LastName          string                   `json:"last_name"`
	University        string                   `json:"university"`
	UniversityYear    string                   `json:"university_year"`
	Role              models.UserRole          `json:"role"`
	ApplicationStatus models.ApplicationStatus `json:"application_status"`
	TeamID            *uuid.UUID               `json:"team_id,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
}

// EnsureUser provisions the user row from token claims on first request
// and returns the existing row otherwise.
func (s *UserService) EnsureUser(claims *auth.AuthClaims) (*UserResponse, error) {
	userID, err := claims.UserID()
	if err != nil {
		return nil, apperrors.NewAuthenticationError(err.Error())
	}

	user, err := s.userRepo.GetByID(userID)
	if err == nil {
		return toUserResponse(user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	role := models.UserRoleHacker
	if models.UserRole(claims.Role).IsValid() {
		role = models.UserRole(claims.Role)
	}
	user = &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	s.log.WithField("user_id", userID.String()).Info("provisioned user from identity claims")
	return toUserResponse(user), nil
}

// GetMe returns the caller's user record
func (s *UserService) GetMe(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// SyncPendingMetadata re-drives identity mirror writes that failed after
// commit. Admin only. Returns the number of users successfully synced.
func (s *UserService) SyncPendingMetadata(ctx context.Context, callerID uuid.UUID, limit int) (int, error) {
	if err := s.requireAdmin(callerID); err != nil {
		return 0, err
	}
	if limit <= 0 {
		limit = 50
	}
	pending, err := s.userRepo.GetMetadataSyncPending(limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending metadata syncs: %w", err)
	}

	synced := 0
	for _, user := range pending {
		if err := s.identity.UpdateUserMetadata(ctx, user.ID, user.TeamID); err != nil {
			s.log.WithField("user_id", user.ID.String()).Warnf("identity metadata repair failed: %v", err)
			continue
		}
		if err := s.userRepo.MarkMetadataSynced(user.ID); err != nil {
			s.log.WithField("user_id", user.ID.String()).Warnf("failed to mark metadata synced: %v", err)
			continue
		}
		synced++
	}
	return synced, nil
}

func (s *UserService) requireAdmin(callerID uuid.UUID) error {
	caller, err := s.userRepo.GetByID(callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get caller: %w", err)
	}
	if !caller.IsAdmin() {
		return apperrors.ErrNotAdmin
	}
	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		University:        user.University,
		UniversityYear:    user.UniversityYear,
		Role:              user.Role,
		ApplicationStatus: user.ApplicationStatus,
		TeamID:            user.TeamID,
		CreatedAt:         user.CreatedAt,
	}
}
