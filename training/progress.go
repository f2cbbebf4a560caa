package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"certtrack/catalog"
	trainingModels "certtrack/models/training"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizResult is what a learner gets back from a quiz submission.
type QuizResult struct {
	QuizScore
	SectionNumber int                         `json:"section_number"`
	Attempts      int                         `json:"attempts"`
	TrackComplete bool                        `json:"track_complete"`
	Certificate   *trainingModels.Certificate `json:"certificate,omitempty"`
}

// ProgressSummary aggregates an assignment's progress across its track.
type ProgressSummary struct {
	Status            string                           `json:"status"`
	CompletedSections int                              `json:"completed_sections"`
	TotalSections     int                              `json:"total_sections"`
	PerSection        []trainingModels.SectionProgress `json:"per_section"`
}

// RecordVideoComplete marks the section's content as watched. The first piece
// of recorded progress moves a PENDING assignment to IN_PROGRESS.
func RecordVideoComplete(db *gorm.DB, assignment *trainingModels.Assignment, sectionNumber int) (*trainingModels.SectionProgress, error) {
	track, ok := catalog.Get(assignment.TrackID)
	if !ok {
		return nil, fmt.Errorf("assignment %d references unknown track %q", assignment.ID, assignment.TrackID)
	}
	if _, ok := track.Section(sectionNumber); !ok {
		return nil, ErrNotFound
	}

	var progress *trainingModels.SectionProgress
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		progress, err = upsertSectionProgress(tx, assignment.ID, sectionNumber)
		if err != nil {
			return err
		}

		if progress.VideoCompletedAt == nil {
			now := time.Now()
			progress.VideoCompletedAt = &now
			if err := tx.Save(progress).Error; err != nil {
				return fmt.Errorf("saving section progress: %w", err)
			}
		}

		return markStarted(tx, assignment)
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// SubmitQuiz scores a submission for one section. A passing submission
// completes the section; passing the track's last incomplete section completes
// the assignment and issues its certificate. A failing submission only
// increments the attempt counter, so retries are unlimited.
func SubmitQuiz(db *gorm.DB, assignment *trainingModels.Assignment, sectionNumber int, answers map[string]int) (*QuizResult, error) {
	track, ok := catalog.Get(assignment.TrackID)
	if !ok {
		return nil, fmt.Errorf("assignment %d references unknown track %q", assignment.ID, assignment.TrackID)
	}
	section, ok := track.Section(sectionNumber)
	if !ok {
		return nil, ErrNotFound
	}

	score := ScoreQuiz(section.Quiz, answers)
	result := &QuizResult{QuizScore: score, SectionNumber: sectionNumber}

	// Completed assignments are terminal: score the submission for the
	// learner but change nothing.
	if assignment.Status == trainingModels.StatusCompleted {
		var progress trainingModels.SectionProgress
		err := db.Where("assignment_id = ? AND section_number = ?", assignment.ID, sectionNumber).First(&progress).Error
		if err == nil {
			result.Attempts = progress.Attempts
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("loading section progress: %w", err)
		}

		cert, err := findCertificate(db, assignment.ID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if cert != nil {
			result.TrackComplete = true
			result.Certificate = cert
		}
		return result, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		progress, err := upsertSectionProgress(tx, assignment.ID, sectionNumber)
		if err != nil {
			return err
		}

		progress.Attempts++
		if raw, err := json.Marshal(answers); err == nil {
			progress.LastAnswers = datatypes.JSON(raw)
		}

		now := time.Now()
		if score.Passed && progress.QuizCompletedAt == nil {
			progress.QuizCompletedAt = &now
			scorePct := score.ScorePercent
			progress.QuizScore = &scorePct
		}

		if err := tx.Save(progress).Error; err != nil {
			return fmt.Errorf("saving section progress: %w", err)
		}
		result.Attempts = progress.Attempts

		if err := markStarted(tx, assignment); err != nil {
			return err
		}

		if !score.Passed || progress.QuizCompletedAt == nil {
			return nil
		}

		completed, err := completedSectionCount(tx, assignment.ID)
		if err != nil {
			return err
		}
		if completed < len(track.Sections) {
			return nil
		}

		// Last section's quiz just passed: complete the assignment and
		// issue the certificate synchronously.
		assignment.Status = trainingModels.StatusCompleted
		if assignment.CompletedAt == nil {
			assignment.CompletedAt = &now
		}
		if err := tx.Save(assignment).Error; err != nil {
			return fmt.Errorf("completing assignment: %w", err)
		}

		cert, _, err := IssueCertificate(tx, assignment.ID)
		if err != nil {
			return err
		}
		result.TrackComplete = true
		result.Certificate = cert
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetProgress computes the assignment's aggregate completion.
func GetProgress(db *gorm.DB, assignment *trainingModels.Assignment) (*ProgressSummary, error) {
	track, ok := catalog.Get(assignment.TrackID)
	if !ok {
		return nil, fmt.Errorf("assignment %d references unknown track %q", assignment.ID, assignment.TrackID)
	}

	var rows []trainingModels.SectionProgress
	if err := db.Where("assignment_id = ?", assignment.ID).Order("section_number asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading section progress: %w", err)
	}

	completed := 0
	for _, row := range rows {
		if row.QuizCompletedAt != nil {
			completed++
		}
	}

	return &ProgressSummary{
		Status:            assignment.Status,
		CompletedSections: completed,
		TotalSections:     len(track.Sections),
		PerSection:        rows,
	}, nil
}

// upsertSectionProgress loads or lazily creates the (assignment, section) row.
func upsertSectionProgress(tx *gorm.DB, assignmentID uint, sectionNumber int) (*trainingModels.SectionProgress, error) {
	var progress trainingModels.SectionProgress
	err := tx.Where("assignment_id = ? AND section_number = ?", assignmentID, sectionNumber).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = trainingModels.SectionProgress{
			AssignmentID:  assignmentID,
			SectionNumber: sectionNumber,
		}
		if err := tx.Create(&progress).Error; err != nil {
			return nil, fmt.Errorf("creating section progress: %w", err)
		}
		return &progress, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading section progress: %w", err)
	}
	return &progress, nil
}

// markStarted moves PENDING to IN_PROGRESS on the first recorded progress.
// Later statuses are never walked back.
func markStarted(tx *gorm.DB, assignment *trainingModels.Assignment) error {
	if assignment.Status != trainingModels.StatusPending {
		return nil
	}
	assignment.Status = trainingModels.StatusInProgress
	if err := tx.Save(assignment).Error; err != nil {
		return fmt.Errorf("updating assignment status: %w", err)
	}
	return nil
}

func completedSectionCount(tx *gorm.DB, assignmentID uint) (int, error) {
	var count int64
	err := tx.Model(&trainingModels.SectionProgress{}).
		Where("assignment_id = ? AND quiz_completed_at IS NOT NULL", assignmentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting completed sections: %w", err)
	}
	return int(count), nil
}
