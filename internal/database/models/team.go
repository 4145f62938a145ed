package models

import (
	"github.com/google/uuid"
)

// MaxTeamSize is the hard cap on team membership.
const MaxTeamSize = 6

// Team represents a hackathon team. Membership is derived from users whose
// team_id points here, never stored as a list.
type Team struct {
	BaseModel
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null;size:5" validate:"required,len=5"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Members []User      `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Search  *TeamSearch `json:"search,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsFull reports whether the loaded member set has reached the cap.
// Members must be preloaded for this to be meaningful.
func (t *Team) IsFull() bool {
	return len(t.Members) >= MaxTeamSize
}
