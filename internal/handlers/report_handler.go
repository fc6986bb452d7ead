package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var in service.ReportInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	rep, err := h.reports.Submit(c.Context(), middleware.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rep)
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	out, err := h.reports.All(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) SetStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.reports.SetStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report updated"})
}
