package training

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"certtrack/catalog"
	trainingModels "certtrack/models/training"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AssignmentInput is one entry of a bulk team-training request.
type AssignmentInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Track string `json:"track" validate:"required"`
}

// CreateAssignments bulk-creates PENDING assignments for an organization.
// The whole batch is written in one transaction; any invalid entry aborts all
// of it with a ValidationError.
func CreateAssignments(db *gorm.DB, orgID uint, entries []AssignmentInput) ([]trainingModels.Assignment, error) {
	if len(entries) == 0 {
		return nil, &ValidationError{Field: "assignments", Reason: "at least one entry is required"}
	}

	now := time.Now()
	assignments := make([]trainingModels.Assignment, 0, len(entries))
	for i, entry := range entries {
		field := fmt.Sprintf("assignments[%d]", i)
		if strings.TrimSpace(entry.Name) == "" {
			return nil, &ValidationError{Field: field + ".name", Reason: "name is required"}
		}
		if !emailRe.MatchString(entry.Email) {
			return nil, &ValidationError{Field: field + ".email", Reason: "invalid email"}
		}
		if _, ok := catalog.Get(entry.Track); !ok {
			return nil, &ValidationError{Field: field + ".track", Reason: "unknown track: " + entry.Track}
		}

		assignments = append(assignments, trainingModels.Assignment{
			OrgID:       orgID,
			TrackID:     entry.Track,
			Name:        strings.TrimSpace(entry.Name),
			Email:       strings.ToLower(strings.TrimSpace(entry.Email)),
			Status:      trainingModels.StatusPending,
			AccessToken: uuid.NewString(),
			AssignedAt:  now,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&assignments).Error
	})
	if err != nil {
		return nil, fmt.Errorf("creating assignments: %w", err)
	}

	return assignments, nil
}

// ListFilters narrows ListAssignments. Zero values mean no filter.
type ListFilters struct {
	Status string
	Track  string
}

// ListAssignments returns the organization's assignments, newest first.
func ListAssignments(db *gorm.DB, orgID uint, filters ListFilters) ([]trainingModels.Assignment, error) {
	query := db.Where("org_id = ?", orgID)
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Track != "" {
		query = query.Where("track_id = ?", filters.Track)
	}

	var assignments []trainingModels.Assignment
	if err := query.Order("assigned_at desc").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	return assignments, nil
}

// GetAssignment fetches one assignment scoped to the organization.
func GetAssignment(db *gorm.DB, orgID, assignmentID uint) (*trainingModels.Assignment, error) {
	var assignment trainingModels.Assignment
	err := db.Where("id = ? AND org_id = ?", assignmentID, orgID).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching assignment: %w", err)
	}
	return &assignment, nil
}

// GetAssignmentByToken resolves the link-based learner access token.
func GetAssignmentByToken(db *gorm.DB, token string) (*trainingModels.Assignment, error) {
	var assignment trainingModels.Assignment
	err := db.Where("access_token = ?", token).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching assignment by token: %w", err)
	}
	return &assignment, nil
}

// DeleteAssignment hard-deletes an assignment together with its progress,
// certificate and notification rows, so no orphaned certificate is left for
// the expiry engine to trip over. Fails with ErrNotFound when the assignment
// is not owned by the organization.
func DeleteAssignment(db *gorm.DB, orgID, assignmentID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var assignment trainingModels.Assignment
		err := tx.Where("id = ? AND org_id = ?", assignmentID, orgID).First(&assignment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("fetching assignment: %w", err)
		}

		var cert trainingModels.Certificate
		err = tx.Where("assignment_id = ?", assignment.ID).First(&cert).Error
		if err == nil {
			if err := tx.Unscoped().Where("certificate_id = ?", cert.ID).Delete(&trainingModels.CertNotification{}).Error; err != nil {
				return fmt.Errorf("deleting certificate notifications: %w", err)
			}
			if err := tx.Unscoped().Delete(&cert).Error; err != nil {
				return fmt.Errorf("deleting certificate: %w", err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("fetching certificate: %w", err)
		}

		if err := tx.Unscoped().Where("assignment_id = ?", assignment.ID).Delete(&trainingModels.SectionProgress{}).Error; err != nil {
			return fmt.Errorf("deleting section progress: %w", err)
		}
		if err := tx.Unscoped().Delete(&assignment).Error; err != nil {
			return fmt.Errorf("deleting assignment: %w", err)
		}
		return nil
	})
}
