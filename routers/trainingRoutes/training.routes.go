package trainingRoutes

import (
	controllers "certtrack/controllers/training"
	"certtrack/middleware"
	validators "certtrack/validators/training"

	"github.com/gofiber/fiber/v2"
)

// SetupTrainingRoutes sets up the org-facing and learner-facing training routes
func SetupTrainingRoutes(app *fiber.App) {
	trainingGroup := app.Group("/training")

	// Catalog
	trainingGroup.Get("/tracks", middleware.JWTMiddleware, controllers.GetTracks)

	// Org-scoped assignment management
	trainingGroup.Post("/assignments", middleware.JWTMiddleware, validators.BulkAssign(), controllers.CreateTeamAssignments)
	trainingGroup.Get("/assignments", middleware.JWTMiddleware, controllers.GetAssignmentsList)
	trainingGroup.Get("/assignments/:id", middleware.JWTMiddleware, validators.AssignmentID(), controllers.GetAssignmentDetail)
	trainingGroup.Delete("/assignments/:id", middleware.JWTMiddleware, validators.AssignmentID(), controllers.DeleteAssignment)
	trainingGroup.Post("/assignments/:id/progress", middleware.JWTMiddleware, validators.AssignmentID(), validators.ProgressAction(), controllers.SubmitProgressByID)

	// Link-based learner access (no login)
	trainingGroup.Get("/t/:token", validators.AccessToken(), controllers.GetLearnerView)
	trainingGroup.Post("/t/:token/progress", validators.AccessToken(), validators.ProgressAction(), controllers.SubmitProgressByToken)

	// Public certificate verification
	app.Get("/certificates/:number", validators.CertificateNumber(), controllers.GetCertificateByNumber)
}
