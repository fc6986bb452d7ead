package service

import (
	"context"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type ResourceService struct {
	resources repository.ResourceRepository
}

func NewResourceService(resources repository.ResourceRepository) *ResourceService {
	return &ResourceService{resources: resources}
}

type ResourceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
}

func (s *ResourceService) Upload(ctx context.Context, uploaderID string, in ResourceInput) (*models.Resource, error) {
	if in.Title == "" || in.Description == "" || in.Body == "" || in.Category == "" {
		return nil, apperr.BadRequest("Missing required fields")
	}
	if !models.OneOf(in.Category, models.ResourceCategories) {
		return nil, apperr.BadRequest("Invalid category")
	}
	res := &models.Resource{
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		Price:       in.Price,
		Category:    in.Category,
		UploadedBy:  uploaderID,
	}
	if err := s.resources.Insert(ctx, res); err != nil {
		return nil, apperr.Internal(err)
	}
	return res, nil
}

func (s *ResourceService) All(ctx context.Context) ([]*models.Resource, error) {
	out, err := s.resources.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// Get fetches one resource and counts the access.
func (s *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	res, err := s.resources.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Resource not found")
		}
		return nil, apperr.Internal(err)
	}
	if err := s.resources.IncrementAccess(ctx, id); err != nil {
		return nil, apperr.Internal(err)
	}
	res.AccessCount++
	return res, nil
}

func (s *ResourceService) Mine(ctx context.Context, uploaderID string) ([]*models.Resource, error) {
	out, err := s.resources.ListByUploader(ctx, uploaderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// Delete removes a resource. Allowed for the uploader and for admins.
func (s *ResourceService) Delete(ctx context.Context, id, requesterID, requesterRole string) error {
	res, err := s.resources.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return apperr.NotFound("Resource not found")
		}
		return apperr.Internal(err)
	}
	if res.UploadedBy != requesterID && requesterRole != models.RoleAdmin {
		return apperr.Forbidden("Unauthorized to delete this resource")
	}
	if err := s.resources.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
