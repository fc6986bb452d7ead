package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type MentorshipHandler struct {
	mentorships *service.MentorshipService
}

func NewMentorshipHandler(m *service.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{mentorships: m}
}

func (h *MentorshipHandler) Request(c *fiber.Ctx) error {
	u := middleware.CurrentUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
	}
	var in struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.mentorships.Request(c.Context(), u, c.Params("mentorId"), in.Message)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

func (h *MentorshipHandler) List(c *fiber.Ctx) error {
	views, err := h.mentorships.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

func (h *MentorshipHandler) Accept(c *fiber.Ctx) error {
	if err := h.mentorships.Accept(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Mentorship request accepted"})
}

func (h *MentorshipHandler) Reject(c *fiber.Ctx) error {
	if err := h.mentorships.Reject(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Mentorship request rejected"})
}
