package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
)

// fail renders any service error as the uniform {message} body.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperr.StatusOf(err)).JSON(fiber.Map{"message": apperr.MessageOf(err)})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
}
