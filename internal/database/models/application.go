package models

import (
	"time"

	"github.com/google/uuid"
)

// Application holds the multi-step application form for a user. Fields are
// saved incrementally as drafts; SubmittedAt is stamped once on submission.
type Application struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Personal info step
	PhoneNumber string `json:"phone_number" gorm:"size:30" validate:"max=30"`
	Country     string `json:"country" gorm:"size:100" validate:"max=100"`
	Gender      string `json:"gender" gorm:"size:40" validate:"max=40"`
	DateOfBirth string `json:"date_of_birth" gorm:"size:10" validate:"max=10"`

	// Education step
	University     string `json:"university" gorm:"size:200" validate:"max=200"`
	Major          string `json:"major" gorm:"size:200" validate:"max=200"`
	GraduationYear string `json:"graduation_year" gorm:"size:4" validate:"max=4"`

	// Experience / links step
	CVURL        string `json:"cv_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	PortfolioURL string `json:"portfolio_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	GitHubURL    string `json:"github_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	LinkedInURL  string `json:"linkedin_url" gorm:"size:500" validate:"omitempty,url,max=500"`

	// Team formation step
	HasTeam        bool   `json:"has_team"`
	TeamPreference string `json:"team_preference" gorm:"size:500" validate:"max=500"`

	// Logistics step
	NeedsTravelReimbursement bool   `json:"needs_travel_reimbursement"`
	ArrivingFrom             string `json:"arriving_from" gorm:"size:200" validate:"max=200"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// TableName returns the table name for Application
func (Application) TableName() string {
	return "applications"
}
