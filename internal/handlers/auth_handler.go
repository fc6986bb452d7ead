package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/presence"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type AuthHandler struct {
	auth     *service.AuthService
	presence *presence.Store
	log      *zap.SugaredLogger
}

func NewAuthHandler(auth *service.AuthService, pres *presence.Store, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{auth: auth, presence: pres, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in service.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.auth.Register(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.auth.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return fail(c, err)
	}
	if err := h.presence.SetOnline(c.Context(), res.User.ID.Hex()); err != nil {
		h.log.Warnw("presence set online", "error", err)
	}
	return c.JSON(res)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.presence.SetOffline(c.Context(), middleware.UserID(c)); err != nil {
		h.log.Warnw("presence set offline", "error", err)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	u, err := h.auth.Profile(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(u)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in service.ProfileUpdate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	u, err := h.auth.UpdateProfile(c.Context(), middleware.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(u)
}
