package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/middleware"
	"github.com/Kamaludyn/career-connect-backend/internal/service"
	"github.com/Kamaludyn/career-connect-backend/internal/ws"
)

type MessageHandler struct {
	chat  *service.ChatService
	relay *ws.Relay
}

func NewMessageHandler(chat *service.ChatService, relay *ws.Relay) *MessageHandler {
	return &MessageHandler{chat: chat, relay: relay}
}

// Send stores the message, then hands it to the relay for live fan-out.
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var in struct {
		ConversationID string `json:"conversationId"`
		Text           string `json:"text"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	sender := middleware.UserID(c)
	res, err := h.chat.Send(c.Context(), in.ConversationID, sender, in.Text)
	if err != nil {
		return fail(c, err)
	}

	h.relay.Publish(in.ConversationID, sender, res.Message, res.IsNewConversation, res.Receiver)
	return c.Status(fiber.StatusCreated).JSON(res.Message)
}

// History returns the conversation's messages oldest first. ?limit= caps the
// count; absent means the full thread.
func (h *MessageHandler) History(c *fiber.Ctx) error {
	var limit int64
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid limit"})
		}
		limit = n
	}
	msgs, err := h.chat.ListForConversation(c.Context(), c.Params("conversationId"), limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(msgs)
}

func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	msg, err := h.chat.MarkRead(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(msg)
}
