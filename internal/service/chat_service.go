package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/events"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

// ChatService owns the conversation and message lifecycle: find-or-create of
// two-party threads, message persistence, and read-state transitions. The
// real-time fan-out is the caller's job; Send reports what the relay needs.
type ChatService struct {
	convs  repository.ConversationRepository
	msgs   repository.MessageRepository
	users  repository.UserRepository
	events events.Publisher
	log    *zap.SugaredLogger
}

func NewChatService(
	convs repository.ConversationRepository,
	msgs repository.MessageRepository,
	users repository.UserRepository,
	pub events.Publisher,
	log *zap.SugaredLogger,
) *ChatService {
	return &ChatService{convs: convs, msgs: msgs, users: users, events: pub, log: log}
}

// CreateOrGet returns the single conversation between requester and the
// receiver, creating it when absent. The two calls with the same pair, in
// either order, always land on the same conversation.
func (s *ChatService) CreateOrGet(ctx context.Context, requesterID, receiverID string) (*models.ConversationView, error) {
	if _, err := primitive.ObjectIDFromHex(receiverID); err != nil {
		return nil, apperr.BadRequest("Invalid receiver ID")
	}
	if receiverID == requesterID {
		return nil, apperr.BadRequest("Cannot start a conversation with yourself")
	}
	if _, err := s.users.FindByID(ctx, receiverID); err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Receiver not found")
		}
		return nil, apperr.Internal(err)
	}

	conv, err := s.convs.GetOrCreate(ctx, requesterID, receiverID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.buildView(ctx, conv)
}

// ListForUser returns the user's conversations, most recently updated first,
// each populated with participant summaries and the last message.
func (s *ChatService) ListForUser(ctx context.Context, userID string) ([]*models.ConversationView, error) {
	convs, err := s.convs.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	views := make([]*models.ConversationView, 0, len(convs))
	for _, conv := range convs {
		v, err := s.buildView(ctx, conv)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// SendResult carries what the relay needs alongside the stored message.
type SendResult struct {
	Message           *models.Message
	IsNewConversation bool
	Receiver          string
}

// Send persists a message and advances the parent conversation's last-message
// pointer. The sender must be one of the conversation's two participants.
func (s *ChatService) Send(ctx context.Context, conversationID, senderID, text string) (*SendResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.BadRequest("Message text is required")
	}
	conv, err := s.convs.FindByID(ctx, conversationID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Conversation not found")
		}
		return nil, apperr.Internal(err)
	}
	if !conv.HasParticipant(senderID) {
		return nil, apperr.Forbidden("Sender is not a participant in this conversation")
	}

	isNew := conv.LastMessage == ""

	msg := &models.Message{
		ConversationID: conv.ID.Hex(),
		Sender:         senderID,
		Text:           text,
		SentAt:         time.Now().UTC(),
	}
	if err := s.msgs.Insert(ctx, msg); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.convs.SetLastMessage(ctx, conv.ID.Hex(), msg.ID.Hex(), msg.SentAt); err != nil {
		return nil, apperr.Internal(err)
	}

	s.events.Publish(ctx, conv.ID.Hex(), events.Event{
		Type:    events.TypeMessageSent,
		Payload: msg,
	})

	return &SendResult{
		Message:           msg,
		IsNewConversation: isNew,
		Receiver:          conv.OtherParticipant(senderID),
	}, nil
}

// ListForConversation returns the thread history oldest first. limit <= 0
// means the full history.
func (s *ChatService) ListForConversation(ctx context.Context, conversationID string, limit int64) ([]*models.Message, error) {
	msgs, err := s.msgs.ListForConversation(ctx, conversationID, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return msgs, nil
}

// MarkRead flips a message to read. The sender calling it is a successful
// no-op (senders always see their own message as read); any repeated call is
// idempotent.
func (s *ChatService) MarkRead(ctx context.Context, messageID, requesterID string) (*models.Message, error) {
	msg, err := s.msgs.FindByID(ctx, messageID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Message not found")
		}
		return nil, apperr.Internal(err)
	}
	if msg.Sender == requesterID {
		return msg, nil
	}
	if !msg.Read {
		if err := s.msgs.SetRead(ctx, messageID); err != nil {
			return nil, apperr.Internal(err)
		}
		msg.Read = true
	}
	return msg, nil
}

// buildView joins participant summaries and the last message onto a
// conversation document.
func (s *ChatService) buildView(ctx context.Context, conv *models.Conversation) (*models.ConversationView, error) {
	view := &models.ConversationView{
		ID:        conv.ID.Hex(),
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
	for _, pid := range conv.Participants {
		u, err := s.users.FindByID(ctx, pid)
		if err != nil {
			if isNotFound(err) {
				// participant deleted since; keep the thread readable
				view.Participants = append(view.Participants, models.UserSummary{ID: pid})
				continue
			}
			return nil, apperr.Internal(err)
		}
		view.Participants = append(view.Participants, u.Summary())
	}
	if conv.LastMessage != "" {
		last, err := s.msgs.FindByID(ctx, conv.LastMessage)
		if err != nil && !isNotFound(err) {
			return nil, apperr.Internal(err)
		}
		view.LastMessage = last
	}
	return view, nil
}
