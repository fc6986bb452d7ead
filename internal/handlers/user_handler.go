package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/presence"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type UserHandler struct {
	users    *service.UserService
	auth     *service.AuthService
	presence *presence.Store
	log      *zap.SugaredLogger
}

func NewUserHandler(users *service.UserService, auth *service.AuthService, pres *presence.Store, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{users: users, auth: auth, presence: pres, log: log}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.users.List(c.Context(), c.Query("role"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *UserHandler) Mentors(c *fiber.Ctx) error {
	out, err := h.users.Mentors(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	u, err := h.users.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(u)
}

// Update edits a profile. Users edit themselves; admins can edit anyone.
// Mentors may toggle availability through the same body.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	targetID := c.Params("id")
	requester := middleware.CurrentUser(c)
	if requester == nil || (requester.ID.Hex() != targetID && requester.Role != models.RoleAdmin) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
	}

	var in struct {
		service.ProfileUpdate
		Availability *bool `json:"availability"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	u, err := h.auth.UpdateProfile(c.Context(), targetID, in.ProfileUpdate)
	if err != nil {
		return fail(c, err)
	}
	if in.Availability != nil {
		u, err = h.users.SetAvailability(c.Context(), targetID, *in.Availability)
		if err != nil {
			return fail(c, err)
		}
	}
	return c.JSON(u)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	requester := middleware.CurrentUser(c)
	if requester == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
	}
	if err := h.users.Delete(c.Context(), c.Params("id"), requester.ID.Hex(), requester.Role); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// Status reports the user's mirrored online state.
func (h *UserHandler) Status(c *fiber.Ctx) error {
	st, err := h.presence.Get(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Warnw("presence get", "user", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(st)
}
