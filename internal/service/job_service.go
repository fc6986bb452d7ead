package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type JobService struct {
	jobs  repository.JobRepository
	users repository.UserRepository
	apps  repository.ApplicationRepository
	notif *NotificationService
}

func NewJobService(jobs repository.JobRepository, users repository.UserRepository, apps repository.ApplicationRepository, notif *NotificationService) *JobService {
	return &JobService{jobs: jobs, users: users, apps: apps, notif: notif}
}

type JobInput struct {
	Title             string `json:"title"`
	Company           string `json:"company"`
	Description       string `json:"description"`
	Location          string `json:"location"`
	LocationDetails   string `json:"locationDetails"`
	Type              string `json:"type"`
	ExperienceLevel   string `json:"experienceLevel"`
	MinSalary         int    `json:"minSalary"`
	MaxSalary         int    `json:"maxSalary"`
	Currency          string `json:"currency"`
	ApplicationMethod string `json:"applicationMethod"`
	ApplicationLink   string `json:"applicationLink"`
}

func (in JobInput) validate() error {
	if in.Title == "" || in.Company == "" || in.Description == "" ||
		in.Type == "" || in.ExperienceLevel == "" || in.MinSalary == 0 || in.MaxSalary == 0 || in.Currency == "" {
		return apperr.BadRequest("Please fill in all required fields.")
	}
	if !models.OneOf(in.Location, models.JobLocations) {
		return apperr.BadRequest("Invalid job location")
	}
	if !models.OneOf(in.Type, models.JobTypes) {
		return apperr.BadRequest("Invalid job type")
	}
	if !models.OneOf(in.ExperienceLevel, models.JobExperienceLevels) {
		return apperr.BadRequest("Invalid experience level")
	}
	if !models.OneOf(in.Currency, models.JobCurrencies) {
		return apperr.BadRequest("Invalid currency")
	}
	if !models.OneOf(in.ApplicationMethod, models.ApplicationMethods) {
		return apperr.BadRequest("Invalid application method")
	}
	if in.ApplicationMethod != "careerconnect" && in.ApplicationLink == "" {
		return apperr.BadRequest("Application link or email is required for this application method.")
	}
	if in.Location != "Remote" && in.LocationDetails == "" {
		return apperr.BadRequest("Job location must be provided.")
	}
	return nil
}

// Create posts a job and notifies every student about it.
func (s *JobService) Create(ctx context.Context, posterID string, in JobInput) (*models.Job, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:             in.Title,
		Company:           in.Company,
		Description:       in.Description,
		Location:          in.Location,
		LocationDetails:   in.LocationDetails,
		Type:              in.Type,
		ExperienceLevel:   in.ExperienceLevel,
		MinSalary:         in.MinSalary,
		MaxSalary:         in.MaxSalary,
		Currency:          in.Currency,
		ApplicationMethod: in.ApplicationMethod,
		ApplicationLink:   in.ApplicationLink,
		PostedBy:          posterID,
	}
	if err := s.jobs.Insert(ctx, job); err != nil {
		return nil, apperr.Internal(err)
	}

	studentIDs, err := s.users.ListIDsByRole(ctx, models.RoleStudent)
	if err == nil {
		ns := make([]*models.Notification, 0, len(studentIDs))
		for _, sid := range studentIDs {
			ns = append(ns, &models.Notification{
				User:        sid,
				Message:     "New job posted: " + job.Title,
				Type:        models.NotifNewJob,
				RelatedID:   job.ID.Hex(),
				TriggeredBy: posterID,
			})
		}
		s.notif.NotifyMany(ctx, ns)
	}

	if err := s.users.PushPostedJob(ctx, posterID, job.ID.Hex()); err != nil {
		return nil, apperr.Internal(err)
	}
	return job, nil
}

func (s *JobService) All(ctx context.Context) ([]*models.Job, error) {
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, apperr.Internal(err)
	}
	return job, nil
}

// JobWithApplicants is the employer's view of one of their postings.
type JobWithApplicants struct {
	*models.Job
	Applicants []*models.JobApplication `json:"applicants"`
}

func (s *JobService) Mine(ctx context.Context, posterID string) ([]*JobWithApplicants, error) {
	jobs, err := s.jobs.ListByPoster(ctx, posterID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	out := make([]*JobWithApplicants, 0, len(jobs))
	for _, job := range jobs {
		apps, err := s.apps.ListForJob(ctx, job.ID.Hex())
		if err != nil {
			return nil, apperr.Internal(err)
		}
		out = append(out, &JobWithApplicants{Job: job, Applicants: apps})
	}
	return out, nil
}

func (s *JobService) Update(ctx context.Context, id, requesterID string, in JobInput) (*models.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != requesterID {
		return nil, apperr.Forbidden("Not authorized to update this job")
	}

	set := bson.M{}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Company != "" {
		set["company"] = in.Company
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.Location != "" {
		set["location"] = in.Location
	}
	if in.LocationDetails != "" {
		set["location_details"] = in.LocationDetails
	}
	if in.Type != "" {
		set["type"] = in.Type
	}
	if in.ExperienceLevel != "" {
		set["experience_level"] = in.ExperienceLevel
	}
	if in.MinSalary != 0 {
		set["min_salary"] = in.MinSalary
	}
	if in.MaxSalary != 0 {
		set["max_salary"] = in.MaxSalary
	}
	if in.Currency != "" {
		set["currency"] = in.Currency
	}
	if in.ApplicationMethod != "" {
		set["application_method"] = in.ApplicationMethod
	}
	if in.ApplicationLink != "" {
		set["application_link"] = in.ApplicationLink
	}

	updated, err := s.jobs.Update(ctx, id, set)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return updated, nil
}

// Delete removes a job. Allowed for the posting employer and for admins.
func (s *JobService) Delete(ctx context.Context, id, requesterID, requesterRole string) error {
	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if job.PostedBy != requesterID && requesterRole != models.RoleAdmin {
		return apperr.Forbidden("Unauthorized to delete this job")
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	if err := s.users.PullPostedJob(ctx, job.PostedBy, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
