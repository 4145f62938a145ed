package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamSearch holds a team's discoverability settings for the team browser.
// One row per team, created hidden alongside the team itself.
type TeamSearch struct {
	TeamID    uuid.UUID        `json:"team_id" gorm:"type:uuid;primary_key"`
	About     string           `json:"about" gorm:"size:500" validate:"max=500"`
	Note      string           `json:"note" gorm:"size:500" validate:"max=500"`
	Contact   string           `json:"contact" gorm:"size:200" validate:"max=200"`
	Status    TeamSearchStatus `json:"status" gorm:"type:varchar(20);not null;default:'hidden'"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName returns the table name for TeamSearch
func (TeamSearch) TableName() string {
	return "team_searches"
}
