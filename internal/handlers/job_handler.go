package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type JobHandler struct {
	jobs *service.JobService
}

func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in service.JobInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	job, err := h.jobs.Create(c.Context(), middleware.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.jobs.All(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(jobs)
}

func (h *JobHandler) Mine(c *fiber.Ctx) error {
	jobs, err := h.jobs.Mine(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(jobs)
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var in service.JobInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	job, err := h.jobs.Update(c.Context(), c.Params("id"), middleware.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	u := middleware.CurrentUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
	}
	if err := h.jobs.Delete(c.Context(), c.Params("id"), u.ID.Hex(), u.Role); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}
