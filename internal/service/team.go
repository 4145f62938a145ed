package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxCodeGenAttempts bounds the retry loop on join-code collisions
const maxCodeGenAttempts = 5

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo   repository.TeamRepositoryInterface
	searchRepo repository.TeamSearchRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	identity   identity.MetadataClient
	validator  *validator.Validate
	log        *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(
	teamRepo repository.TeamRepositoryInterface,
	searchRepo repository.TeamSearchRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	identityClient identity.MetadataClient,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		searchRepo: searchRepo,
		userRepo:   userRepo,
		identity:   identityClient,
		validator:  validator,
		log:        logger.New(),
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"teamName" validate:"required,min=1,max=100"`
}

// JoinTeamRequest represents the request to join a team by code
type JoinTeamRequest struct {
	Code string `json:"team_code" validate:"required,len=5"`
}

// RenameTeamRequest represents the request to rename a team
type RenameTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateTeamSearchRequest represents a partial update of discoverability settings
type UpdateTeamSearchRequest struct {
	About   *string                  `json:"about,omitempty" validate:"omitempty,max=500"`
	Note    *string                  `json:"note,omitempty" validate:"omitempty,max=500"`
	Contact *string                  `json:"contact,omitempty" validate:"omitempty,max=200"`
	Status  *models.TeamSearchStatus `json:"status,omitempty"`
}

// TeamMemberResponse represents a member in team responses
type TeamMemberResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email,omitempty"`
	University     string    `json:"university,omitempty"`
	UniversityYear string    `json:"university_year,omitempty"`
}

// TeamSearchResponse represents a team's discoverability settings
type TeamSearchResponse struct {
	TeamID  uuid.UUID               `json:"team_id"`
	About   string                  `json:"about"`
	Note    string                  `json:"note"`
	Contact string                  `json:"contact"`
	Status  models.TeamSearchStatus `json:"status"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Code      string               `json:"code"`
	CreatedBy uuid.UUID            `json:"created_by"`
	CreatedAt time.Time            `json:"created_at"`
	Members   []TeamMemberResponse `json:"members"`
	Search    *TeamSearchResponse  `json:"search,omitempty"`
}

// DiscoverableTeamResponse represents a team in the team browser. Member
// entries carry names only.
type DiscoverableTeamResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	CreatedAt   time.Time            `json:"created_at"`
	MemberCount int                  `json:"member_count"`
	Members     []TeamMemberResponse `json:"members"`
	About       string               `json:"about"`
	Note        string               `json:"note"`
	Contact     string               `json:"contact"`
}

// GetUserTeam returns the caller's team with members and search settings,
// or nil if the user is unaffiliated
func (s *TeamService) GetUserTeam(userID uuid.UUID) (*TeamResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TeamID == nil {
		return nil, nil
	}

	team, err := s.teamRepo.GetWithMembersAndSearch(*user.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// Create creates a team, its hidden search row, and attaches the creator,
// all in one transaction. The identity mirror is updated after commit.
func (s *TeamService) Create(ctx context.Context, userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TeamID != nil {
		return nil, apperrors.ErrAlreadyOnTeam
	}

	var team *models.Team
	for attempt := 0; attempt < maxCodeGenAttempts; attempt++ {
		code, err := generateTeamCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate team code: %w", err)
		}

		candidate := &models.Team{
			Name:      req.Name,
			Code:      code,
			CreatedBy: userID,
		}

		err = s.teamRepo.Transaction(func(tx *gorm.DB) error {
			if err := s.teamRepo.Create(tx, candidate); err != nil {
				return err
			}
			if err := s.searchRepo.Create(tx, &models.TeamSearch{
				TeamID: candidate.ID,
				Status: models.TeamSearchStatusHidden,
			}); err != nil {
				return err
			}
			return s.userRepo.SetTeamID(tx, userID, &candidate.ID)
		})
		if err == nil {
			team = candidate
			break
		}
		if !isUniqueViolation(err) {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
		s.log.WithField("attempt", attempt+1).Warn("team code collision, regenerating")
	}
	if team == nil {
		return nil, apperrors.ErrCodeGenExhausted
	}

	s.mirrorTeamID(ctx, userID, &team.ID)

	created, err := s.teamRepo.GetWithMembersAndSearch(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created team: %w", err)
	}
	return s.toResponse(created), nil
}

// Join attaches the caller to the team matching the given code. Joining a
// full team fails, and the join that fills the last seat hides the team
// from discovery.
func (s *TeamService) Join(ctx context.Context, userID uuid.UUID, req *JoinTeamRequest) (*TeamResponse, error) {
	req.Code = normalizeTeamCode(req.Code)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TeamID != nil {
		return nil, apperrors.ErrAlreadyOnTeam
	}

	team, err := s.teamRepo.GetByCode(req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamCodeNotFound
		}
		return nil, fmt.Errorf("failed to look up team code: %w", err)
	}

	err = s.teamRepo.Transaction(func(tx *gorm.DB) error {
		count, err := s.teamRepo.CountMembers(tx, team.ID)
		if err != nil {
			return err
		}
		if count >= models.MaxTeamSize {
			return apperrors.ErrTeamFull
		}
		if err := s.userRepo.SetTeamID(tx, userID, &team.ID); err != nil {
			return err
		}
		// Filling the last seat removes the team from discovery.
		if count+1 >= models.MaxTeamSize {
			return s.searchRepo.SetStatus(tx, team.ID, models.TeamSearchStatusHidden)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to join team: %w", err)
	}

	s.mirrorTeamID(ctx, userID, &team.ID)

	joined, err := s.teamRepo.GetWithMembersAndSearch(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load joined team: %w", err)
	}
	return s.toResponse(joined), nil
}

// Leave detaches the caller from the team and returns the team as it was
// before removal. The creator may leave; leadership is not reassigned.
func (s *TeamService) Leave(ctx context.Context, userID uuid.UUID, teamID uuid.UUID) (*TeamResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TeamID == nil || *user.TeamID != teamID {
		return nil, apperrors.ErrNotOnTeam
	}

	team, err := s.teamRepo.GetWithMembersAndSearch(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.userRepo.SetTeamID(nil, userID, nil); err != nil {
		return nil, fmt.Errorf("failed to leave team: %w", err)
	}

	s.mirrorTeamID(ctx, userID, nil)

	return s.toResponse(team), nil
}

// Rename changes a team's name. Creator only. Returns the post-update state.
func (s *TeamService) Rename(userID uuid.UUID, teamID uuid.UUID, req *RenameTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team.CreatedBy != userID {
		return nil, apperrors.ErrNotTeamCreator
	}

	team.Name = req.Name
	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to rename team: %w", err)
	}

	renamed, err := s.teamRepo.GetWithMembersAndSearch(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load renamed team: %w", err)
	}
	return s.toResponse(renamed), nil
}

// RemoveMember detaches a member from the team. Creator only. The creator
// removing themself behaves like Leave.
func (s *TeamService) RemoveMember(ctx context.Context, userID uuid.UUID, teamID uuid.UUID, targetUserID uuid.UUID) error {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team.CreatedBy != userID {
		return apperrors.ErrNotTeamCreator
	}

	target, err := s.userRepo.GetByID(targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get target user: %w", err)
	}
	if target.TeamID == nil || *target.TeamID != teamID {
		return apperrors.ErrMemberNotFound
	}

	if err := s.userRepo.SetTeamID(nil, targetUserID, nil); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.mirrorTeamID(ctx, targetUserID, nil)

	return nil
}

// Delete removes the team, clearing every member's affiliation in the same
// transaction. The identity mirror is updated per member after commit.
func (s *TeamService) Delete(ctx context.Context, userID uuid.UUID, teamID uuid.UUID) error {
	team, err := s.teamRepo.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team.CreatedBy != userID {
		return apperrors.ErrNotTeamCreator
	}

	err = s.teamRepo.Transaction(func(tx *gorm.DB) error {
		for _, member := range team.Members {
			if err := s.userRepo.SetTeamID(tx, member.ID, nil); err != nil {
				return err
			}
		}
		if err := s.searchRepo.Delete(tx, teamID); err != nil {
			return err
		}
		return s.teamRepo.Delete(tx, teamID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	for _, member := range team.Members {
		s.mirrorTeamID(ctx, member.ID, nil)
	}

	return nil
}

// UpdateSearch patches the team's discoverability settings. Creator only.
// Going discoverable on a full team is rejected.
func (s *TeamService) UpdateSearch(userID uuid.UUID, teamID uuid.UUID, req *UpdateTeamSearchRequest) (*TeamSearchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be discoverable or hidden")
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team.CreatedBy != userID {
		return nil, apperrors.ErrNotTeamCreator
	}

	if req.Status != nil && *req.Status == models.TeamSearchStatusDiscoverable {
		count, err := s.teamRepo.GetMemberCount(teamID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}
		if count >= models.MaxTeamSize {
			return nil, apperrors.ErrTeamFull
		}
	}

	search, err := s.searchRepo.GetByTeamID(teamID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get team search: %w", err)
		}
		search = &models.TeamSearch{TeamID: teamID, Status: models.TeamSearchStatusHidden}
		if err := s.searchRepo.Create(nil, search); err != nil {
			return nil, fmt.Errorf("failed to create team search: %w", err)
		}
	}

	if req.About != nil {
		search.About = *req.About
	}
	if req.Note != nil {
		search.Note = *req.Note
	}
	if req.Contact != nil {
		search.Contact = *req.Contact
	}
	if req.Status != nil {
		search.Status = *req.Status
	}

	if err := s.searchRepo.Update(search); err != nil {
		return nil, fmt.Errorf("failed to update team search: %w", err)
	}

	return toSearchResponse(search), nil
}

// GetDiscoverableTeams returns teams open to joiners: status discoverable,
// re-filtered in-process to exclude any that have filled up since.
func (s *TeamService) GetDiscoverableTeams() ([]DiscoverableTeamResponse, error) {
	teams, err := s.teamRepo.GetDiscoverable()
	if err != nil {
		return nil, fmt.Errorf("failed to get discoverable teams: %w", err)
	}

	responses := make([]DiscoverableTeamResponse, 0, len(teams))
	for i := range teams {
		team := &teams[i]
		if team.IsFull() {
			continue
		}
		members := make([]TeamMemberResponse, len(team.Members))
		for j, m := range team.Members {
			members[j] = TeamMemberResponse{
				ID:        m.ID,
				FirstName: m.FirstName,
				LastName:  m.LastName,
			}
		}
		resp := DiscoverableTeamResponse{
			ID:          team.ID,
			Name:        team.Name,
			CreatedAt:   team.CreatedAt,
			MemberCount: len(team.Members),
			Members:     members,
		}
		if team.Search != nil {
			resp.About = team.Search.About
			resp.Note = team.Search.Note
			resp.Contact = team.Search.Contact
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// mirrorTeamID pushes the user's team_id into the identity provider's
// metadata. Failures are logged and left pending for the repair sweep;
// the database remains the source of truth.
func (s *TeamService) mirrorTeamID(ctx context.Context, userID uuid.UUID, teamID *uuid.UUID) {
	if err := s.identity.UpdateUserMetadata(ctx, userID, teamID); err != nil {
		s.log.WithField("user_id", userID.String()).Warnf("identity metadata mirror failed: %v", err)
		return
	}
	if err := s.userRepo.MarkMetadataSynced(userID); err != nil {
		s.log.WithField("user_id", userID.String()).Warnf("failed to mark metadata synced: %v", err)
	}
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	members := make([]TeamMemberResponse, len(team.Members))
	for i, m := range team.Members {
		members[i] = TeamMemberResponse{
			ID:             m.ID,
			FirstName:      m.FirstName,
			LastName:       m.LastName,
			Email:          m.Email,
			University:     m.University,
			UniversityYear: m.UniversityYear,
		}
	}
	resp := &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Code:      team.Code,
		CreatedBy: team.CreatedBy,
		CreatedAt: team.CreatedAt,
		Members:   members,
	}
	if team.Search != nil {
		resp.Search = toSearchResponse(team.Search)
	}
	return resp
}

func toSearchResponse(search *models.TeamSearch) *TeamSearchResponse {
	return &TeamSearchResponse{
		TeamID:  search.TeamID,
		About:   search.About,
		Note:    search.Note,
		Contact: search.Contact,
		Status:  search.Status,
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint error
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value")
}
