package trainingValidator

import (
	"fmt"
	"strconv"
	"strings"

	"certtrack/middleware"
	"certtrack/training"

	trainingControllers "certtrack/controllers/training"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BulkAssign validates the "assign team training" payload. Structural checks
// run here; track existence is re-checked by the store inside its
// transaction.
func BulkAssign() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Assignments []training.AssignmentInput `json:"assignments"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Assignments) == 0 {
			errors["assignments"] = "At least one assignment is required!"
		}

		for i, entry := range reqData.Assignments {
			if err := validate.Struct(entry); err != nil {
				for _, fieldErr := range err.(validator.ValidationErrors) {
					key := fmt.Sprintf("assignments[%d].%s", i, strings.ToLower(fieldErr.Field()))
					errors[key] = "Invalid or missing value!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignments", reqData.Assignments)
		return c.Next()
	}
}

// AssignmentID validates the :id route parameter.
func AssignmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Assignment ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Assignment ID!", nil)
		}

		c.Locals("assignmentID", id)
		return c.Next()
	}
}

// AccessToken validates the :token route parameter for link-based access.
func AccessToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Params("token"))
		if token == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Access token is required!", nil)
		}

		c.Locals("accessToken", token)
		return c.Next()
	}
}

// ProgressAction validates a progress submission body.
func ProgressAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(trainingControllers.ProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionNumber < 1 {
			errors["section_number"] = "Section number must be greater than 0!"
		}

		switch reqData.Action {
		case "complete_video":
			// no body beyond the section number
		case "submit_quiz":
			if len(reqData.Answers) == 0 {
				errors["answers"] = "Quiz answers are required!"
			}
		default:
			errors["action"] = "Action must be complete_video or submit_quiz!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("progressRequest", reqData)
		return c.Next()
	}
}

// CertificateNumber validates the :number route parameter.
func CertificateNumber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := strings.TrimSpace(c.Params("number"))
		if number == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate number is required!", nil)
		}

		c.Locals("certificateNumber", strings.ToUpper(number))
		return c.Next()
	}
}
