package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/events"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

// NotificationService stores per-user notifications and lets the owning user
// read and clear them. Other workflows call Notify / NotifyMany as a side
// effect; those never fail the triggering request.
type NotificationService struct {
	repo   repository.NotificationRepository
	events events.Publisher
	log    *zap.SugaredLogger
}

func NewNotificationService(repo repository.NotificationRepository, pub events.Publisher, log *zap.SugaredLogger) *NotificationService {
	return &NotificationService{repo: repo, events: pub, log: log}
}

func (s *NotificationService) Notify(ctx context.Context, n *models.Notification) {
	if err := s.repo.Insert(ctx, n); err != nil {
		s.log.Errorw("notification insert", "user", n.User, "type", n.Type, "error", err)
		return
	}
	s.events.Publish(ctx, n.User, events.Event{
		Type:    events.TypeNotificationCreated,
		Payload: n,
	})
}

func (s *NotificationService) NotifyMany(ctx context.Context, ns []*models.Notification) {
	if len(ns) == 0 {
		return
	}
	if err := s.repo.InsertMany(ctx, ns); err != nil {
		s.log.Errorw("notification insert many", "count", len(ns), "error", err)
	}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	ns, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return ns, nil
}

// MarkRead marks one notification read. A notification that does not exist
// or belongs to someone else reports not found either way.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil || n.User != userID {
		return apperr.NotFound("Notification not found")
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *NotificationService) Delete(ctx context.Context, id, userID string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil || n.User != userID {
		return apperr.NotFound("Notification not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *NotificationService) Clear(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAllForUser(ctx, userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
