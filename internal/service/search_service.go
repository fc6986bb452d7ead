package service

import (
	"context"
	"sync"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type SearchService struct {
	users     repository.UserRepository
	jobs      repository.JobRepository
	resources repository.ResourceRepository
}

func NewSearchService(users repository.UserRepository, jobs repository.JobRepository, resources repository.ResourceRepository) *SearchService {
	return &SearchService{users: users, jobs: jobs, resources: resources}
}

type SearchResults struct {
	Mentors   []*models.User     `json:"mentors"`
	Jobs      []*models.Job      `json:"jobs"`
	Resources []*models.Resource `json:"resources"`
}

const defaultSearchLimit = 10

// Search matches mentors, jobs and resources against the query with a
// case-insensitive substring match. Pages are 1-based. The three lookups
// run concurrently.
func (s *SearchService) Search(ctx context.Context, q string, page, limit int64) (*SearchResults, error) {
	if q == "" {
		return nil, apperr.BadRequest("Search query is required")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultSearchLimit
	}
	skip := (page - 1) * limit

	var (
		res   SearchResults
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error
	)
	fail := func(err error) {
		mu.Lock()
		if first == nil {
			first = err
		}
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		out, err := s.users.SearchMentors(ctx, q, skip, limit)
		if err != nil {
			fail(err)
			return
		}
		res.Mentors = out
	}()
	go func() {
		defer wg.Done()
		out, err := s.jobs.Search(ctx, q, skip, limit)
		if err != nil {
			fail(err)
			return
		}
		res.Jobs = out
	}()
	go func() {
		defer wg.Done()
		out, err := s.resources.Search(ctx, q, skip, limit)
		if err != nil {
			fail(err)
			return
		}
		res.Resources = out
	}()
	wg.Wait()

	if first != nil {
		return nil, apperr.Internal(first)
	}
	return &res, nil
}
