package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/job-board/internal/core/domain"
	"github.com/freelancehub/job-board/internal/core/ports"
)

// ListingCache abstracts the short-lived cache of the full job listing
// (Redis). A nil miss is reported as (nil, nil).
type ListingCache interface {
	Get(ctx context.Context) ([]*domain.Job, error)
	Set(ctx context.Context, jobs []*domain.Job) error
	Invalidate(ctx context.Context) error
}

// JobService implements job creation and listing.
type JobService struct {
	repo   ports.JobRepository
	cache  ListingCache
	logger zerolog.Logger
}

// NewJobService returns a JobService. cache may be nil, in which case every
// listing goes straight to the repository.
func NewJobService(repo ports.JobRepository, cache ListingCache, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, cache: cache, logger: logger}
}

// CreateJob persists a new job posting with status "open". The client
// reference is taken from the authenticated caller and is not checked for
// existence.
func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	category := domain.Category(input.Category)
	if !domain.ValidCategory(category) {
		return nil, domain.ErrInvalidCategory
	}

	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Budget:      domain.Budget{Min: input.BudgetMin, Max: input.BudgetMax},
		ClientID:    input.ClientID,
		Status:      domain.StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create job")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to invalidate listing cache")
		}
	}

	s.logger.Info().
		Str("job_id", created.ID).
		Str("category", string(created.Category)).
		Str("client_id", input.ClientID).
		Msg("job created")

	return created, nil
}

// ListJobs returns every job with its client expanded. Cache failures are
// tolerated: the listing falls through to the repository.
func (s *JobService) ListJobs(ctx context.Context) ([]*domain.Job, error) {
	if s.cache != nil {
		jobs, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("listing cache read failed")
		} else if jobs != nil {
			return jobs, nil
		}
	}

	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, jobs); err != nil {
			s.logger.Warn().Err(err).Msg("listing cache write failed")
		}
	}
	return jobs, nil
}
