package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type ConversationHandler struct {
	chat *service.ChatService
}

func NewConversationHandler(chat *service.ChatService) *ConversationHandler {
	return &ConversationHandler{chat: chat}
}

// Create finds or creates the thread between the caller and receiverId.
func (h *ConversationHandler) Create(c *fiber.Ctx) error {
	var in struct {
		ReceiverID string `json:"receiverId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	view, err := h.chat.CreateOrGet(c.Context(), middleware.UserID(c), in.ReceiverID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// ListForUser returns the user's threads, most recently active first.
func (h *ConversationHandler) ListForUser(c *fiber.Ctx) error {
	views, err := h.chat.ListForUser(c.Context(), c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}
