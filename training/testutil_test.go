package training

import (
	"testing"

	trainingModels "certtrack/models/training"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database with the production schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&trainingModels.Assignment{},
		&trainingModels.SectionProgress{},
		&trainingModels.Certificate{},
		&trainingModels.CertNotification{},
	))

	return db
}

// createAssignment seeds one assignment for progress and certificate tests.
func createAssignment(t *testing.T, db *gorm.DB, orgID uint, track string) *trainingModels.Assignment {
	t.Helper()

	assignments, err := CreateAssignments(db, orgID, []AssignmentInput{
		{Name: "Jane Doe", Email: "jane@co.com", Track: track},
	})
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	return &assignments[0]
}
