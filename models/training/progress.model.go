package training

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SectionProgress tracks one assignment's progress through one track section.
// A row is created lazily on the first interaction with the section.
// QuizCompletedAt is only ever set by a passing submission; failed submissions
// increment Attempts and nothing else.
type SectionProgress struct {
	gorm.Model
	AssignmentID     uint           `json:"assignment_id" gorm:"uniqueIndex:idx_assignment_section;not null"`
	SectionNumber    int            `json:"section_number" gorm:"uniqueIndex:idx_assignment_section;not null"`
	VideoCompletedAt *time.Time     `json:"video_completed_at"`
	QuizCompletedAt  *time.Time     `json:"quiz_completed_at"`
	QuizScore        *int           `json:"quiz_score"` // 0-100, set on pass
	Attempts         int            `json:"attempts" gorm:"default:0"`
	LastAnswers      datatypes.JSON `json:"last_answers"` // most recent submission, for the review view
}

func (SectionProgress) TableName() string { return "training_section_progress" }
