package training

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents a time-bounded completion certificate.
// At most one exists per assignment; it is never mutated after creation.
type Certificate struct {
	gorm.Model
	AssignmentID      uint      `json:"assignment_id" gorm:"uniqueIndex;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"uniqueIndex;not null"`
	IssuedAt          time.Time `json:"issued_at"`
	ExpiresAt         time.Time `json:"expires_at" gorm:"index"`
}

func (Certificate) TableName() string { return "training_certificates" }
