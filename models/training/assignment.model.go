package training

import (
	"time"

	"gorm.io/gorm"
)

// Assignment status values. Transitions only move forward:
// PENDING -> IN_PROGRESS -> COMPLETED.
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// Assignment records that one person must complete one training track.
type Assignment struct {
	gorm.Model
	OrgID       uint       `json:"org_id" gorm:"index;not null"`
	TrackID     string     `json:"track_id" gorm:"index;not null"`
	Name        string     `json:"name" gorm:"not null"`
	Email       string     `json:"email" gorm:"index;not null"`
	Status      string     `json:"status" gorm:"default:'PENDING'"`
	AccessToken string     `json:"-" gorm:"uniqueIndex;not null"` // link-based learner access
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at"` // set exactly once, on transition to COMPLETED
}

func (Assignment) TableName() string { return "training_assignments" }
