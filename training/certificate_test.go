package training

import (
	"regexp"
	"testing"
	"time"

	trainingModels "certtrack/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCertificateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	assignment := createAssignment(t, db, 1, "recruiter")

	first, issued, err := IssueCertificate(db, assignment.ID)
	require.NoError(t, err)
	assert.True(t, issued)

	second, issued, err := IssueCertificate(db, assignment.ID)
	require.NoError(t, err)
	assert.False(t, issued, "re-issuance is a no-op, not a failure")
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&trainingModels.Certificate{}).Where("assignment_id = ?", assignment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCertificateValidityWindow(t *testing.T) {
	db := setupTestDB(t)
	assignment := createAssignment(t, db, 1, "recruiter")

	cert, _, err := IssueCertificate(db, assignment.ID)
	require.NoError(t, err)

	// Fixed 365-day offset from issuance; no calendar-anniversary
	// adjustment, so across a leap day the expiry lands one calendar day
	// before the anniversary.
	assert.Equal(t, cert.IssuedAt.AddDate(0, 0, 365), cert.ExpiresAt)
	assert.InDelta(t, float64(365*24), cert.ExpiresAt.Sub(cert.IssuedAt).Hours(), 0.001)
}

func TestCertificateNumberFormat(t *testing.T) {
	db := setupTestDB(t)

	numberRe := regexp.MustCompile(`^TC-\d{4}-[0-9A-F]{8}$`)
	seen := make(map[string]bool)

	for i := 0; i < 10; i++ {
		assignments, err := CreateAssignments(db, 1, []AssignmentInput{
			{Name: "Holder", Email: "holder@co.com", Track: "recruiter"},
		})
		require.NoError(t, err)

		cert, _, err := IssueCertificate(db, assignments[0].ID)
		require.NoError(t, err)
		assert.Regexp(t, numberRe, cert.CertificateNumber)
		assert.False(t, seen[cert.CertificateNumber], "numbers must be globally unique")
		seen[cert.CertificateNumber] = true
	}
}

func TestLookupCertificate(t *testing.T) {
	db := setupTestDB(t)
	assignment := createAssignment(t, db, 1, "recruiter")

	cert, _, err := IssueCertificate(db, assignment.ID)
	require.NoError(t, err)

	view, err := LookupCertificate(db, cert.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", view.HolderName)
	assert.Equal(t, "jane@co.com", view.HolderEmail)
	assert.Equal(t, "recruiter", view.TrackID)
	assert.Equal(t, "Recruiter Compliance Training", view.TrackTitle)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 365), view.ExpiresAt, time.Minute)

	_, err = LookupCertificate(db, "TC-2020-DEADBEEF")
	assert.ErrorIs(t, err, ErrNotFound)
}
