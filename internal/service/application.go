package service

import (
	"errors"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationService handles business logic for applications and their review
type ApplicationService struct {
	applicationRepo repository.ApplicationRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	validator       *validator.Validate
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo repository.ApplicationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		validator:       validator,
	}
}

// SaveApplicationRequest represents a draft save of any application step.
// All fields are optional; only provided fields are written.
type SaveApplicationRequest struct {
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,max=30"`
	Country        *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,max=40"`
	DateOfBirth    *string `json:"date_of_birth,omitempty" validate:"omitempty,max=10"`
	University     *string `json:"university,omitempty" validate:"omitempty,max=200"`
	Major          *string `json:"major,omitempty" validate:"omitempty,max=200"`
	GraduationYear *string `json:"graduation_year,omitempty" validate:"omitempty,max=4"`
	CVURL          *string `json:"cv_url,omitempty" validate:"omitempty,url,max=500"`
	PortfolioURL   *string `json:"portfolio_url,omitempty" validate:"omitempty,url,max=500"`
	GitHubURL      *string `json:"github_url,omitempty" validate:"omitempty,url,max=500"`
	LinkedInURL    *string `json:"linkedin_url,omitempty" validate:"omitempty,url,max=500"`
	HasTeam        *bool   `json:"has_team,omitempty"`
	TeamPreference *string `json:"team_preference,omitempty" validate:"omitempty,max=500"`

	NeedsTravelReimbursement *bool   `json:"needs_travel_reimbursement,omitempty"`
	ArrivingFrom             *string `json:"arriving_from,omitempty" validate:"omitempty,max=200"`
}

// DecideApplicationRequest represents an admin review decision
type DecideApplicationRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
}

// ApplicationListResponse represents a paginated list of applications under review
type ApplicationListResponse struct {
	Applications []ApplicationListEntry `json:"applications"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
}

// ApplicationListEntry pairs a user with their application for admin review
type ApplicationListEntry struct {
	User        UserResponse        `json:"user"`
	Application *models.Application `json:"application,omitempty"`
}

// GetMyApplication returns the caller's application, creating an empty
// draft row on first access
func (s *ApplicationService) GetMyApplication(userID uuid.UUID) (*models.Application, error) {
	application, err := s.applicationRepo.GetByUserID(userID)
	if err == nil {
		return application, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	application = &models.Application{UserID: userID}
	if err := s.applicationRepo.Upsert(application); err != nil {
		return nil, fmt.Errorf("failed to create application draft: %w", err)
	}
	return application, nil
}

// SaveApplication patches the caller's draft with the provided fields.
// Saving after submission is rejected.
func (s *ApplicationService) SaveApplication(userID uuid.UUID, req *SaveApplicationRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	application, err := s.GetMyApplication(userID)
	if err != nil {
		return nil, err
	}
	if application.SubmittedAt != nil {
		return nil, apperrors.ErrAlreadySubmitted
	}

	applyApplicationPatch(application, req)

	if err := s.applicationRepo.Upsert(application); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}
	return application, nil
}

// SubmitApplication validates the required fields, stamps the submission
// time, and moves the user's status from draft to submitted
func (s *ApplicationService) SubmitApplication(userID uuid.UUID) (*models.Application, error) {
	application, err := s.GetMyApplication(userID)
	if err != nil {
		return nil, err
	}
	if application.SubmittedAt != nil {
		return nil, apperrors.ErrAlreadySubmitted
	}

	if application.University == "" {
		return nil, apperrors.NewValidationError("university", "is required before submission")
	}
	if application.Country == "" {
		return nil, apperrors.NewValidationError("country", "is required before submission")
	}

	now := time.Now().UTC()
	application.SubmittedAt = &now
	if err := s.applicationRepo.Upsert(application); err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}
	if err := s.userRepo.SetApplicationStatus(userID, models.ApplicationStatusSubmitted); err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return application, nil
}

// ListApplications returns applications for admin review, filtered by status
func (s *ApplicationService) ListApplications(callerID uuid.UUID, status models.ApplicationStatus, page, pageSize int) (*ApplicationListResponse, error) {
	if err := s.requireAdmin(callerID); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid application status")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	users, total, err := s.userRepo.GetByApplicationStatus(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	entries := make([]ApplicationListEntry, len(users))
	for i := range users {
		entry := ApplicationListEntry{User: *toUserResponse(&users[i])}
		if application, err := s.applicationRepo.GetByUserID(users[i].ID); err == nil {
			entry.Application = application
		}
		entries[i] = entry
	}

	return &ApplicationListResponse{
		Applications: entries,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// DecideApplication records an admin decision on a submitted application
func (s *ApplicationService) DecideApplication(callerID uuid.UUID, targetUserID uuid.UUID, req *DecideApplicationRequest) error {
	if err := s.requireAdmin(callerID); err != nil {
		return err
	}
	if !req.Status.IsDecision() {
		return apperrors.NewValidationError("status", "must be accepted, rejected, or waitlisted")
	}

	if _, err := s.userRepo.GetByID(targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.userRepo.SetApplicationStatus(targetUserID, req.Status); err != nil {
		return fmt.Errorf("failed to record decision: %w", err)
	}
	return nil
}

func (s *ApplicationService) requireAdmin(callerID uuid.UUID) error {
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

func applyApplicationPatch(application *models.Application, req *SaveApplicationRequest) {
	if req.PhoneNumber != nil {
		application.PhoneNumber = *req.PhoneNumber
	}
	if req.Country != nil {
		application.Country = *req.Country
	}
	if req.Gender != nil {
		application.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		application.DateOfBirth = *req.DateOfBirth
	}
	if req.University != nil {
		application.University = *req.University
	}
	if req.Major != nil {
		application.Major = *req.Major
	}
	if req.GraduationYear != nil {
		application.GraduationYear = *req.GraduationYear
	}
	if req.CVURL != nil {
		application.CVURL = *req.CVURL
	}
	if req.PortfolioURL != nil {
		application.PortfolioURL = *req.PortfolioURL
	}
	if req.GitHubURL != nil {
		application.GitHubURL = *req.GitHubURL
	}
	if req.LinkedInURL != nil {
		application.LinkedInURL = *req.LinkedInURL
	}
	if req.HasTeam != nil {
		application.HasTeam = *req.HasTeam
	}
	if req.TeamPreference != nil {
		application.TeamPreference = *req.TeamPreference
	}
	if req.NeedsTravelReimbursement != nil {
		application.NeedsTravelReimbursement = *req.NeedsTravelReimbursement
	}
	if req.ArrivingFrom != nil {
		application.ArrivingFrom = *req.ArrivingFrom
	}
}
