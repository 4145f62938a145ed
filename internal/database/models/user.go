package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a portal user. The ID is the subject of the identity
// provider's token, so the row can be provisioned lazily on first request.
type User struct {
	BaseModel
	Email             string            `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName         string            `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName          string            `json:"last_name" gorm:"size:100" validate:"max=100"`
	University        string            `json:"university" gorm:"size:200" validate:"max=200"`
	UniversityYear    string            `json:"university_year" gorm:"size:40" validate:"max=40"`
	Role              UserRole          `json:"role" gorm:"type:varchar(20);not null;default:'hacker'"`
	ApplicationStatus ApplicationStatus `json:"application_status" gorm:"type:varchar(20);not null;default:'draft'"`
	TeamID            *uuid.UUID        `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// MetadataSyncedAt marks when the identity provider's team_id mirror was
	// last written. Null while a mirror update is pending.
	MetadataSyncedAt *time.Time `json:"-" gorm:"index"`

	// Relationships
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Application *Application `json:"application,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Preferences *Preferences `json:"preferences,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
