package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreferencesService handles business logic for onboarding preferences
type PreferencesService struct {
	preferencesRepo repository.PreferencesRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	validator       *validator.Validate
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(
	preferencesRepo repository.PreferencesRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *PreferencesService {
	return &PreferencesService{
		preferencesRepo: preferencesRepo,
		userRepo:        userRepo,
		validator:       validator,
	}
}

// SavePreferencesRequest represents an onboarding preferences update
type SavePreferencesRequest struct {
	TShirtSize          *string         `json:"tshirt_size,omitempty" validate:"omitempty,oneof=XS S M L XL XXL"`
	DietaryRestrictions *string         `json:"dietary_restrictions,omitempty" validate:"omitempty,max=500"`
	MealChoices         json.RawMessage `json:"meal_choices,omitempty" swaggertype:"object"`
	Completed           *bool           `json:"completed,omitempty"`
}

// GetMyPreferences returns the caller's onboarding preferences. Only
// accepted participants have a preferences flow.
func (s *PreferencesService) GetMyPreferences(userID uuid.UUID) (*models.Preferences, error) {
	if err := s.requireAccepted(userID); err != nil {
		return nil, err
	}

	preferences, err := s.preferencesRepo.GetByUserID(userID)
	if err == nil {
		return preferences, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	preferences = &models.Preferences{UserID: userID}
	if err := s.preferencesRepo.Upsert(preferences); err != nil {
		return nil, fmt.Errorf("failed to create preferences: %w", err)
	}
	return preferences, nil
}

// SavePreferences patches the caller's preferences with the provided fields
func (s *PreferencesService) SavePreferences(userID uuid.UUID, req *SavePreferencesRequest) (*models.Preferences, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	preferences, err := s.GetMyPreferences(userID)
	if err != nil {
		return nil, err
	}

	if req.TShirtSize != nil {
		preferences.TShirtSize = *req.TShirtSize
	}
	if req.DietaryRestrictions != nil {
		preferences.DietaryRestrictions = *req.DietaryRestrictions
	}
	if req.MealChoices != nil {
		preferences.MealChoices = req.MealChoices
	}
	if req.Completed != nil {
		preferences.Completed = *req.Completed
	}

	if err := s.preferencesRepo.Upsert(preferences); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return preferences, nil
}

func (s *PreferencesService) requireAccepted(userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user.ApplicationStatus != models.ApplicationStatusAccepted {
		return apperrors.ErrNotAccepted
	}
	return nil
}
