package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type ResourceHandler struct {
	resources *service.ResourceService
}

func NewResourceHandler(resources *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

func (h *ResourceHandler) Upload(c *fiber.Ctx) error {
	var in service.ResourceInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.resources.Upload(c.Context(), middleware.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *ResourceHandler) List(c *fiber.Ctx) error {
	out, err := h.resources.All(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *ResourceHandler) Get(c *fiber.Ctx) error {
	res, err := h.resources.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(res)
}

func (h *ResourceHandler) Mine(c *fiber.Ctx) error {
	out, err := h.resources.Mine(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	u := middleware.CurrentUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
	}
	if err := h.resources.Delete(c.Context(), c.Params("id"), u.ID.Hex(), u.Role); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Resource deleted successfully"})
}
