package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type ApplicationHandler struct {
	apps *service.ApplicationService
}

func NewApplicationHandler(apps *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	u := middleware.CurrentUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
	}
	app, already, err := h.apps.Apply(c.Context(), c.Params("jobId"), u)
	if err != nil {
		return fail(c, err)
	}
	if already {
		return c.JSON(fiber.Map{"message": "You have already applied for this job", "application": app})
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) Review(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.apps.Review(c.Context(), c.Params("id"), middleware.UserID(c), in.Status); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application " + in.Status})
}

func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	apps, err := h.apps.ListForJob(c.Context(), c.Params("jobId"), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(apps)
}

func (h *ApplicationHandler) Mine(c *fiber.Ctx) error {
	apps, err := h.apps.ListMine(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(apps)
}
