package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns users, optionally filtered by role.
func (s *UserService) List(ctx context.Context, role string) ([]*models.User, error) {
	if role != "" && !models.OneOf(role, []string{
		models.RoleStudent, models.RoleMentor, models.RoleEmployer, models.RoleAdmin,
	}) {
		return nil, apperr.BadRequest("Invalid role")
	}
	out, err := s.users.List(ctx, role)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *UserService) Mentors(ctx context.Context) ([]*models.User, error) {
	return s.List(ctx, models.RoleMentor)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

// SetAvailability toggles a mentor's mentorship availability.
func (s *UserService) SetAvailability(ctx context.Context, mentorID string, available bool) (*models.User, error) {
	u, err := s.Get(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if u.Role != models.RoleMentor {
		return nil, apperr.Forbidden("Only mentors can update availability")
	}
	u, err = s.users.Update(ctx, mentorID, bson.M{"availability": available})
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

// Delete removes an account. Users may delete themselves; admins anyone.
func (s *UserService) Delete(ctx context.Context, id, requesterID, requesterRole string) error {
	if id != requesterID && requesterRole != models.RoleAdmin {
		return apperr.Forbidden("Unauthorized to delete this user")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperr.NotFound("User not found")
		}
		return apperr.Internal(err)
	}
	return nil
}
