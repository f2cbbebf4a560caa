package jobRoutes

import (
	jobs "certtrack/controllers/jobs"
	"certtrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupJobRoutes registers the scheduled-job trigger endpoints
func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/jobs")

	jobGroup.Post("/cert-expiry", middleware.CronAuthMiddleware, jobs.RunCertExpiry)
}
