package jobs

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"certtrack/config"
	"certtrack/database"
	"certtrack/middleware"
	trainingModels "certtrack/models/training"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupJobApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		CronSecret:   "topsecret",
		MailProvider: "console",
		EmailSender:  "no-reply@certtrack.io",
	}

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
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/jobs/cert-expiry", middleware.CronAuthMiddleware, RunCertExpiry)
	return app
}

func TestCertExpiryRequiresSecret(t *testing.T) {
	app := setupJobApp(t)

	req := httptest.NewRequest("POST", "/jobs/cert-expiry", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("POST", "/jobs/cert-expiry", nil)
	req.Header.Set("X-Cron-Secret", "wrong")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCertExpiryTriggerEnvelope(t *testing.T) {
	app := setupJobApp(t)

	// One certificate expiring in exactly 7 days from the pinned clock
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	completedAt := now.AddDate(0, 0, -358)
	assignment := trainingModels.Assignment{
		OrgID:       1,
		TrackID:     "recruiter",
		Name:        "Jane Doe",
		Email:       "jane@co.com",
		Status:      trainingModels.StatusCompleted,
		AccessToken: "token-jane",
		AssignedAt:  completedAt,
		CompletedAt: &completedAt,
	}
	require.NoError(t, database.Database.Db.Create(&assignment).Error)
	require.NoError(t, database.Database.Db.Create(&trainingModels.Certificate{
		AssignmentID:      assignment.ID,
		CertificateNumber: "TC-2025-0BADF00D",
		IssuedAt:          completedAt,
		ExpiresAt:         now.AddDate(0, 0, 7),
	}).Error)

	req := httptest.NewRequest("POST", "/jobs/cert-expiry?now="+now.Format(time.RFC3339), nil)
	req.Header.Set("X-Cron-Secret", "topsecret")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success   bool   `json:"success"`
		Processed int    `json:"processed"`
		Sent      int    `json:"sent"`
		Errors    int    `json:"errors"`
		Timestamp string `json:"timestamp"`
		Details   []struct {
			CertificateNumber string `json:"certificate_number"`
			Tier              int    `json:"tier"`
			Status            string `json:"status"`
		} `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Processed)
	assert.Equal(t, 1, body.Sent)
	assert.Equal(t, 0, body.Errors)
	assert.NotEmpty(t, body.Timestamp)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "TC-2025-0BADF00D", body.Details[0].CertificateNumber)
	assert.Equal(t, 7, body.Details[0].Tier)
	assert.Equal(t, "sent", body.Details[0].Status)

	// Manual backfill with the same clock is a safe no-op
	req = httptest.NewRequest("POST", "/jobs/cert-expiry?now="+now.Format(time.RFC3339), nil)
	req.Header.Set("X-Cron-Secret", "topsecret")
	resp, err = app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Sent)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "already_sent", body.Details[0].Status)
}

func TestCertExpiryRejectsBadNowParam(t *testing.T) {
	app := setupJobApp(t)

	req := httptest.NewRequest("POST", "/jobs/cert-expiry?now=yesterday", nil)
	req.Header.Set("X-Cron-Secret", "topsecret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
