package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/mailer"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type MentorshipService struct {
	mentorships repository.MentorshipRepository
	users       repository.UserRepository
	notif       *NotificationService
	mail        mailer.Mailer
	log         *zap.SugaredLogger
}

func NewMentorshipService(
	mentorships repository.MentorshipRepository,
	users repository.UserRepository,
	notif *NotificationService,
	mail mailer.Mailer,
	log *zap.SugaredLogger,
) *MentorshipService {
	return &MentorshipService{mentorships: mentorships, users: users, notif: notif, mail: mail, log: log}
}

// Request sends a mentorship request from a student to a mentor. A pending
// request between the same pair blocks a duplicate.
func (s *MentorshipService) Request(ctx context.Context, mentee *models.User, mentorID, message string) (*models.Mentorship, error) {
	if message == "" {
		return nil, apperr.BadRequest("Request message is required")
	}
	if mentee.Role != models.RoleStudent {
		return nil, apperr.Forbidden("Only Students can Request For Mentorship")
	}

	mentor, err := s.users.FindByID(ctx, mentorID)
	if err != nil || mentor.Role != models.RoleMentor {
		return nil, apperr.NotFound("Mentor not found")
	}

	menteeID := mentee.ID.Hex()
	if _, err := s.mentorships.FindPending(ctx, menteeID, mentorID); err == nil {
		return nil, apperr.BadRequest("Request already sent")
	} else if !isNotFound(err) {
		return nil, apperr.Internal(err)
	}

	m := &models.Mentorship{Mentee: menteeID, Mentor: mentorID, Message: message}
	if err := s.mentorships.Insert(ctx, m); err != nil {
		return nil, apperr.Internal(err)
	}

	s.notif.Notify(ctx, &models.Notification{
		User:        mentorID,
		Message:     mentee.FullName() + " has sent you a mentorship request.",
		Type:        models.NotifMentorship,
		RelatedID:   m.ID.Hex(),
		TriggeredBy: menteeID,
	})
	return m, nil
}

// List returns requests where the user is either side, newest first, with
// both parties' summaries joined in.
func (s *MentorshipService) List(ctx context.Context, userID string) ([]*models.MentorshipView, error) {
	ms, err := s.mentorships.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	views := make([]*models.MentorshipView, 0, len(ms))
	for _, m := range ms {
		v := &models.MentorshipView{Mentorship: *m}
		if u, err := s.users.FindByID(ctx, m.Mentee); err == nil {
			sum := u.Summary()
			v.MenteeInfo = &sum
		}
		if u, err := s.users.FindByID(ctx, m.Mentor); err == nil {
			sum := u.Summary()
			v.MentorInfo = &sum
		}
		views = append(views, v)
	}
	return views, nil
}

// Accept marks the request accepted. Only the addressed mentor can do it.
func (s *MentorshipService) Accept(ctx context.Context, requestID, mentorID string) error {
	return s.decide(ctx, requestID, mentorID, models.MentorshipAccepted)
}

// Reject marks the request rejected. Only the addressed mentor can do it.
func (s *MentorshipService) Reject(ctx context.Context, requestID, mentorID string) error {
	return s.decide(ctx, requestID, mentorID, models.MentorshipRejected)
}

func (s *MentorshipService) decide(ctx context.Context, requestID, mentorID, status string) error {
	m, err := s.mentorships.FindByID(ctx, requestID)
	if err != nil {
		if isNotFound(err) {
			return apperr.NotFound("Request not found")
		}
		return apperr.Internal(err)
	}
	if m.Mentor != mentorID {
		return apperr.Forbidden("Unauthorized")
	}

	var acceptedAt *time.Time
	text := "Sorry, your mentorship request has been rejected!"
	subject := "Mentorship request rejected"
	if status == models.MentorshipAccepted {
		now := time.Now().UTC()
		acceptedAt = &now
		text = "Congratulations, your mentorship request has been accepted!"
		subject = "Mentorship request accepted"
	}
	if err := s.mentorships.SetStatus(ctx, requestID, status, acceptedAt); err != nil {
		return apperr.Internal(err)
	}

	s.notif.Notify(ctx, &models.Notification{
		User:      m.Mentee,
		Message:   text,
		Type:      models.NotifMentorship,
		RelatedID: m.ID.Hex(),
	})

	if mentee, err := s.users.FindByID(ctx, m.Mentee); err == nil {
		if err := s.mail.Send(ctx, mentee.Email, subject, text); err != nil {
			s.log.Warnw("mentorship mail", "to", mentee.Email, "error", err)
		}
	}
	return nil
}
