package training

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"certtrack/catalog"
	trainingModels "certtrack/models/training"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidityDays is the fixed certificate validity window. No business-day or
// anniversary adjustment: expiry is exactly this many days after issuance.
const ValidityDays = 365

// certNumberAttempts bounds the uniqueness retry loop.
const certNumberAttempts = 5

// IssueCertificate mints the certificate for a completed assignment. It is
// idempotent: when one already exists it is returned unchanged and issued is
// false. Duplicate triggering is a no-op, not an error.
func IssueCertificate(db *gorm.DB, assignmentID uint) (*trainingModels.Certificate, bool, error) {
	existing, err := findCertificate(db, assignmentID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	issuedAt := time.Now()
	cert := trainingModels.Certificate{
		AssignmentID: assignmentID,
		IssuedAt:     issuedAt,
		ExpiresAt:    issuedAt.AddDate(0, 0, ValidityDays),
	}

	for attempt := 0; attempt < certNumberAttempts; attempt++ {
		cert.CertificateNumber = newCertificateNumber(issuedAt)
		err := db.Create(&cert).Error
		if err == nil {
			return &cert, true, nil
		}
		if isUniqueViolation(err) {
			// Either the number collided or a concurrent caller issued
			// for the same assignment; re-read to find out.
			if existing, ferr := findCertificate(db, assignmentID); ferr == nil {
				return existing, false, nil
			}
			continue
		}
		return nil, false, fmt.Errorf("creating certificate: %w", err)
	}

	return nil, false, fmt.Errorf("could not allocate a unique certificate number after %d attempts", certNumberAttempts)
}

// CertificateView is the denormalized record returned by the public lookup.
type CertificateView struct {
	CertificateNumber string    `json:"certificate_number"`
	IssuedAt          time.Time `json:"issued_at"`
	ExpiresAt         time.Time `json:"expires_at"`
	HolderName        string    `json:"holder_name"`
	HolderEmail       string    `json:"holder_email"`
	TrackID           string    `json:"track_id"`
	TrackTitle        string    `json:"track_title"`
}

// LookupCertificate fetches a certificate by its human-presentable number,
// with assignee and track display fields for the verification page.
func LookupCertificate(db *gorm.DB, certificateNumber string) (*CertificateView, error) {
	var cert trainingModels.Certificate
	err := db.Where("certificate_number = ?", certificateNumber).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching certificate: %w", err)
	}

	var assignment trainingModels.Assignment
	if err := db.First(&assignment, cert.AssignmentID).Error; err != nil {
		return nil, fmt.Errorf("fetching certificate assignment: %w", err)
	}

	view := &CertificateView{
		CertificateNumber: cert.CertificateNumber,
		IssuedAt:          cert.IssuedAt,
		ExpiresAt:         cert.ExpiresAt,
		HolderName:        assignment.Name,
		HolderEmail:       assignment.Email,
		TrackID:           assignment.TrackID,
	}
	if track, ok := catalog.Get(assignment.TrackID); ok {
		view.TrackTitle = track.Title
	}
	return view, nil
}

func findCertificate(db *gorm.DB, assignmentID uint) (*trainingModels.Certificate, error) {
	var cert trainingModels.Certificate
	err := db.Where("assignment_id = ?", assignmentID).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching certificate: %w", err)
	}
	return &cert, nil
}

// newCertificateNumber builds a human-presentable number: TC-<year>-<8 hex>.
// Uniqueness is enforced by the database index, with a retry loop above.
func newCertificateNumber(issuedAt time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("TC-%d-%s", issuedAt.Year(), token)
}

// isUniqueViolation matches unique-constraint errors across postgres and the
// sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
