package jobs

import (
	"time"

	"certtrack/utils"

	"github.com/gofiber/fiber/v2"
)

// RunCertExpiry runs one notification engine tick. Normally hit by the
// external scheduler; safe to invoke manually because the job is idempotent.
// An explicit `now` query parameter (RFC3339) is accepted for backfill.
func RunCertExpiry(c *fiber.Ctx) error {
	now := time.Now()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid 'now' parameter, expected RFC3339",
			})
		}
		now = parsed
	}

	result, err := utils.RunExpiryTick(now)

	status := fiber.StatusOK
	success := true
	if err != nil {
		// Store-level failure: the tick aborted partway. Already-written
		// ledger rows stand; the next tick picks up the rest.
		status = fiber.StatusInternalServerError
		success = false
	}

	return c.Status(status).JSON(fiber.Map{
		"success":   success,
		"processed": result.Processed,
		"sent":      result.Sent,
		"errors":    result.Errors,
		"details":   result.Details,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
