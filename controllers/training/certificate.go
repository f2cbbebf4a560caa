package controllers

import (
	"errors"

	"certtrack/database"
	"certtrack/middleware"
	"certtrack/training"

	"github.com/gofiber/fiber/v2"
)

// GetCertificateByNumber is the public certificate verification lookup.
func GetCertificateByNumber(c *fiber.Ctx) error {
	number := c.Locals("certificateNumber").(string)

	view, err := training.LookupCertificate(database.Database.Db, number)
	if err != nil {
		if errors.Is(err, training.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", fiber.Map{
		"certificate": view,
	})
}
