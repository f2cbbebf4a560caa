package controllers

import (
	"errors"

	"certtrack/catalog"
	"certtrack/database"
	"certtrack/middleware"
	trainingModels "certtrack/models/training"
	"certtrack/training"
	"certtrack/utils"

	"github.com/gofiber/fiber/v2"
)

// ProgressRequest is the validated body of a progress submission.
type ProgressRequest struct {
	SectionNumber int            `json:"section_number"`
	Action        string         `json:"action"` // complete_video | submit_quiz
	Answers       map[string]int `json:"answers,omitempty"`
}

// SubmitProgressByToken handles progress from the learner's personal link.
func SubmitProgressByToken(c *fiber.Ctx) error {
	token := c.Locals("accessToken").(string)

	assignment, err := training.GetAssignmentByToken(database.Database.Db, token)
	if err != nil {
		if errors.Is(err, training.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil)
	}

	return handleProgressAction(c, assignment)
}

// SubmitProgressByID handles progress submitted through the org-scoped API.
func SubmitProgressByID(c *fiber.Ctx) error {
	orgID, ok := c.Locals("orgId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	assignmentID := c.Locals("assignmentID").(int)

	assignment, err := training.GetAssignment(database.Database.Db, orgID, uint(assignmentID))
	if err != nil {
		if errors.Is(err, training.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil)
	}

	return handleProgressAction(c, assignment)
}

func handleProgressAction(c *fiber.Ctx, assignment *trainingModels.Assignment) error {
	req := c.Locals("progressRequest").(*ProgressRequest)
	db := database.Database.Db

	switch req.Action {
	case "complete_video":
		if _, err := training.RecordVideoComplete(db, assignment, req.SectionNumber); err != nil {
			if errors.Is(err, training.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
		}

		progress, err := training.GetProgress(db, assignment)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Video completion recorded!", fiber.Map{
			"progress": progress,
		})

	case "submit_quiz":
		result, err := training.SubmitQuiz(db, assignment, req.SectionNumber, req.Answers)
		if err != nil {
			if errors.Is(err, training.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
		}

		if result.TrackComplete && result.Certificate != nil {
			trackTitle := assignment.TrackID
			if track, ok := catalog.Get(assignment.TrackID); ok {
				trackTitle = track.Title
			}
			utils.SendCertificateIssuedEmail(
				assignment.Name, assignment.Email, trackTitle,
				result.Certificate.CertificateNumber,
				result.Certificate.ExpiresAt.Format("January 2, 2006"),
			)
		}

		message := "Quiz submitted!"
		if !result.Passed {
			message = "Quiz not passed. Review the answers and try again."
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
			"result": result,
			"status": assignment.Status,
		})

	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown action!", nil)
	}
}

// GetLearnerView returns the assignment, track content and progress for the
// learner page behind a personal access link. Correct answer indexes are
// never serialized.
func GetLearnerView(c *fiber.Ctx) error {
	token := c.Locals("accessToken").(string)
	db := database.Database.Db

	assignment, err := training.GetAssignmentByToken(db, token)
	if err != nil {
		if errors.Is(err, training.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil)
	}

	track, ok := catalog.Get(assignment.TrackID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Track definition missing!", nil)
	}

	progress, err := training.GetProgress(db, assignment)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment fetched successfully!", fiber.Map{
		"assignment": fiber.Map{
			"name":     assignment.Name,
			"status":   assignment.Status,
			"track_id": assignment.TrackID,
		},
		"track":    track,
		"progress": progress,
	})
}
