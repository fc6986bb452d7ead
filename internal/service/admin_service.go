package service

import (
	"context"
	"sync"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type AdminService struct {
	users     repository.UserRepository
	jobs      repository.JobRepository
	resources repository.ResourceRepository
}

func NewAdminService(users repository.UserRepository, jobs repository.JobRepository, resources repository.ResourceRepository) *AdminService {
	return &AdminService{users: users, jobs: jobs, resources: resources}
}

type PlatformStats struct {
	Students  int64 `json:"students"`
	Mentors   int64 `json:"mentors"`
	Employers int64 `json:"employers"`
	Jobs      int64 `json:"jobs"`
	Resources int64 `json:"resources"`
}

// Stats gathers the dashboard counters. The five counts are independent
// queries, so they run concurrently.
func (s *AdminService) Stats(ctx context.Context) (*PlatformStats, error) {
	var (
		stats PlatformStats
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error
	)

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		defer wg.Done()
		n, err := fn(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if first == nil {
				first = err
			}
			return
		}
		*dst = n
	}

	wg.Add(5)
	go count(&stats.Students, func(ctx context.Context) (int64, error) {
		return s.users.CountByRole(ctx, models.RoleStudent)
	})
	go count(&stats.Mentors, func(ctx context.Context) (int64, error) {
		return s.users.CountByRole(ctx, models.RoleMentor)
	})
	go count(&stats.Employers, func(ctx context.Context) (int64, error) {
		return s.users.CountByRole(ctx, models.RoleEmployer)
	})
	go count(&stats.Jobs, s.jobs.Count)
	go count(&stats.Resources, s.resources.Count)
	wg.Wait()

	if first != nil {
		return nil, apperr.Internal(first)
	}
	return &stats, nil
}
