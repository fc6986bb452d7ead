package service

import (
	"context"
	"fmt"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type ApplicationService struct {
	apps  repository.ApplicationRepository
	jobs  repository.JobRepository
	users repository.UserRepository
	notif *NotificationService
}

func NewApplicationService(apps repository.ApplicationRepository, jobs repository.JobRepository, users repository.UserRepository, notif *NotificationService) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, notif: notif}
}

// Apply submits an application. Employers cannot apply; mentors only while
// unavailable for mentorship. Re-applying is a friendly no-op.
func (s *ApplicationService) Apply(ctx context.Context, jobID string, applicant *models.User) (*models.JobApplication, bool, error) {
	if applicant.Role == models.RoleEmployer {
		return nil, false, apperr.Forbidden("Employers cannot apply for a job")
	}
	if applicant.Role == models.RoleMentor &&
		(applicant.Availability == nil || *applicant.Availability) {
		return nil, false, apperr.Forbidden("Mentors cannot apply for jobs if they are available for mentorship")
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if isNotFound(err) {
			return nil, false, apperr.NotFound("Job not found")
		}
		return nil, false, apperr.Internal(err)
	}

	applicantID := applicant.ID.Hex()
	if existing, err := s.apps.FindByJobAndApplicant(ctx, jobID, applicantID); err == nil {
		return existing, true, nil
	} else if !isNotFound(err) {
		return nil, false, apperr.Internal(err)
	}

	app := &models.JobApplication{Job: jobID, Applicant: applicantID}
	if err := s.apps.Insert(ctx, app); err != nil {
		return nil, false, apperr.Internal(err)
	}

	s.notif.Notify(ctx, &models.Notification{
		User:      job.PostedBy,
		Message:   "New job application for " + job.Title,
		Type:      models.NotifJob,
		RelatedID: app.ID.Hex(),
	})
	return app, false, nil
}

// Review accepts or rejects an application; only the employer who owns the
// job posting may do so.
func (s *ApplicationService) Review(ctx context.Context, applicationID, employerID, status string) error {
	if status != models.ApplicationAccepted && status != models.ApplicationRejected {
		return apperr.BadRequest("Invalid status value.")
	}
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		if isNotFound(err) {
			return apperr.NotFound("Job application not found.")
		}
		return apperr.Internal(err)
	}
	job, err := s.jobs.FindByID(ctx, app.Job)
	if err != nil {
		if isNotFound(err) {
			return apperr.NotFound("Job not found")
		}
		return apperr.Internal(err)
	}
	if job.PostedBy != employerID {
		return apperr.Forbidden("Unauthorized to review this application.")
	}

	if err := s.apps.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperr.Internal(err)
	}

	s.notif.Notify(ctx, &models.Notification{
		User:      app.Applicant,
		Message:   fmt.Sprintf("Your application for %q has been %s.", job.Title, status),
		Type:      models.NotifJob,
		RelatedID: app.ID.Hex(),
	})
	return nil
}

func (s *ApplicationService) ListForJob(ctx context.Context, jobID, employerID string) ([]*models.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Job not found.")
		}
		return nil, apperr.Internal(err)
	}
	if job.PostedBy != employerID {
		return nil, apperr.Forbidden("Unauthorized to view applications for this job.")
	}
	apps, err := s.apps.ListForJob(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return apps, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, applicantID string) ([]*models.JobApplication, error) {
	apps, err := s.apps.ListForApplicant(ctx, applicantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return apps, nil
}
