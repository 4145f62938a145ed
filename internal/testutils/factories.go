package testutils

import (
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Derive a unique email from the UUID to avoid unique index conflicts
	email := fmt.Sprintf("hacker-%s@test.com", id.String()[:8])

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:             email,
		FirstName:         "Jane",
		LastName:          "Hacker",
		University:        "Test University",
		UniversityYear:    "3",
		Role:              models.UserRoleHacker,
		ApplicationStatus: models.ApplicationStatusDraft,
		TeamID:            nil,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithTeam sets the team ID for the user
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithApplicationStatus sets a custom application status for the user
func (f *UserFactory) WithApplicationStatus(status models.ApplicationStatus) *models.User {
	user := f.Create()
	user.ApplicationStatus = status
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	// Derive a unique 5-char join code from the UUID hex
	code := fmt.Sprintf("T%s", id.String()[:4])

	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Test Team",
		Code:      code,
		CreatedBy: uuid.New(),
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithCode sets a custom join code for the team
func (f *TeamFactory) WithCode(code string) *models.Team {
	team := f.Create()
	team.Code = code
	return team
}

// WithCreator sets the creator for the team
func (f *TeamFactory) WithCreator(userID uuid.UUID) *models.Team {
	team := f.Create()
	team.CreatedBy = userID
	return team
}

// TeamSearchFactory provides methods to create test TeamSearch data
type TeamSearchFactory struct{}

// NewTeamSearchFactory creates a new TeamSearchFactory
func NewTeamSearchFactory() *TeamSearchFactory {
	return &TeamSearchFactory{}
}

// Create creates a test TeamSearch with default values
func (f *TeamSearchFactory) Create(teamID uuid.UUID) *models.TeamSearch {
	return &models.TeamSearch{
		TeamID:    teamID,
		About:     "We build things",
		Note:      "Looking for a designer",
		Contact:   "team@test.com",
		Status:    models.TeamSearchStatusHidden,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Discoverable creates a test TeamSearch with discoverable status
func (f *TeamSearchFactory) Discoverable(teamID uuid.UUID) *models.TeamSearch {
	search := f.Create(teamID)
	search.Status = models.TeamSearchStatusDiscoverable
	return search
}

// ApplicationFactory provides methods to create test Application data
type ApplicationFactory struct{}

// NewApplicationFactory creates a new ApplicationFactory
func NewApplicationFactory() *ApplicationFactory {
	return &ApplicationFactory{}
}

// Create creates a test Application draft with default values
func (f *ApplicationFactory) Create(userID uuid.UUID) *models.Application {
	return &models.Application{
		UserID:         userID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
		PhoneNumber:    "+1-555-0123",
		Country:        "Testland",
		University:     "Test University",
		Major:          "Computer Science",
		GraduationYear: "2027",
	}
}

// Submitted creates a test Application that has already been submitted
func (f *ApplicationFactory) Submitted(userID uuid.UUID) *models.Application {
	app := f.Create(userID)
	now := time.Now().UTC()
	app.SubmittedAt = &now
	return app
}

// PreferencesFactory provides methods to create test Preferences data
type PreferencesFactory struct{}

// NewPreferencesFactory creates a new PreferencesFactory
func NewPreferencesFactory() *PreferencesFactory {
	return &PreferencesFactory{}
}

// Create creates test Preferences with default values
func (f *PreferencesFactory) Create(userID uuid.UUID) *models.Preferences {
	return &models.Preferences{
		UserID:              userID,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
		TShirtSize:          "M",
		DietaryRestrictions: "vegetarian",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User        *UserFactory
	Team        *TeamFactory
	TeamSearch  *TeamSearchFactory
	Application *ApplicationFactory
	Preferences *PreferencesFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Team:        NewTeamFactory(),
		TeamSearch:  NewTeamSearchFactory(),
		Application: NewApplicationFactory(),
		Preferences: NewPreferencesFactory(),
	}
}
