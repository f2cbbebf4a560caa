package controllers

import (
	"errors"

	"certtrack/catalog"
	"certtrack/database"
	"certtrack/middleware"
	"certtrack/training"
	"certtrack/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTeamAssignments bulk-assigns a track to a list of team members.
func CreateTeamAssignments(c *fiber.Ctx) error {
	orgID, ok := c.Locals("orgId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	entries, ok := c.Locals("validatedAssignments").([]training.AssignmentInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	assignments, err := training.CreateAssignments(database.Database.Db, orgID, entries)
	if err != nil {
		if training.IsValidation(err) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignments!", nil)
	}

	// Invite emails are triggered here, not by the store.
	for _, a := range assignments {
		trackTitle := a.TrackID
		if track, ok := catalog.Get(a.TrackID); ok {
			trackTitle = track.Title
		}
		utils.SendTrainingInviteEmail(a.Name, a.Email, trackTitle, a.AccessToken)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignments created!", fiber.Map{
		"assignments": assignments,
		"total":       len(assignments),
	})
}

// GetAssignmentsList lists the organization's assignments with optional
// status and track filters.
func GetAssignmentsList(c *fiber.Ctx) error {
	orgID, ok := c.Locals("orgId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	filters := training.ListFilters{
		Status: c.Query("status"),
		Track:  c.Query("track"),
	}

	assignments, err := training.ListAssignments(database.Database.Db, orgID, filters)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", fiber.Map{
		"assignments": assignments,
		"total":       len(assignments),
	})
}

// GetAssignmentDetail returns one assignment with its progress summary.
func GetAssignmentDetail(c *fiber.Ctx) error {
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

	progress, err := training.GetProgress(database.Database.Db, assignment)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment fetched successfully!", fiber.Map{
		"assignment": assignment,
		"progress":   progress,
	})
}

// DeleteAssignment hard-deletes an assignment owned by the organization.
func DeleteAssignment(c *fiber.Ctx) error {
	orgID, ok := c.Locals("orgId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	assignmentID := c.Locals("assignmentID").(int)

	err := training.DeleteAssignment(database.Database.Db, orgID, uint(assignmentID))
	if err != nil {
		if errors.Is(err, training.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment deleted!", nil)
}

// GetTracks lists the available training tracks for the assign picker.
func GetTracks(c *fiber.Ctx) error {
	type trackSummary struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Sections int    `json:"sections"`
	}

	tracks := catalog.All()
	out := make([]trackSummary, len(tracks))
	for i, t := range tracks {
		out[i] = trackSummary{ID: t.ID, Title: t.Title, Sections: len(t.Sections)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracks fetched successfully!", fiber.Map{
		"tracks": out,
	})
}
