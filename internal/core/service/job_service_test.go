package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancehub/job-board/internal/core/domain"
	"github.com/freelancehub/job-board/internal/core/ports"
)

type stubJobRepo struct {
	jobs    []*domain.Job
	listErr error
	calls   int
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	created := *job
	created.ID = "job_1"
	r.jobs = append(r.jobs, &created)
	return &created, nil
}

func (r *stubJobRepo) List(_ context.Context) ([]*domain.Job, error) {
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.jobs, nil
}

type stubCache struct {
	jobs        []*domain.Job
	getErr      error
	sets        int
	invalidated int
}

func (c *stubCache) Get(_ context.Context) ([]*domain.Job, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.jobs, nil
}

func (c *stubCache) Set(_ context.Context, jobs []*domain.Job) error {
	c.sets++
	c.jobs = jobs
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.jobs = nil
	return nil
}

func TestJobService_CreateJob_Defaults(t *testing.T) {
	repo := &stubJobRepo{}
	svc := NewJobService(repo, nil, zerolog.Nop())

	job, err := svc.CreateJob(context.Background(), ports.CreateJobInput{
		Title:     "Logo design",
		Category:  "design",
		BudgetMin: 100,
		BudgetMax: 500,
		ClientID:  "user_1",
	})
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}
	if job.Status != domain.StatusOpen {
		t.Fatalf("expected status open, got %q", job.Status)
	}
	if job.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
	if job.ClientID != "user_1" {
		t.Fatalf("unexpected client id: %s", job.ClientID)
	}
}

func TestJobService_CreateJob_InvalidCategory(t *testing.T) {
	repo := &stubJobRepo{}
	svc := NewJobService(repo, nil, zerolog.Nop())

	if _, err := svc.CreateJob(context.Background(), ports.CreateJobInput{Category: "plumbing"}); err != domain.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Fatalf("expected no job stored")
	}
}

func TestJobService_CreateJob_InvalidatesCache(t *testing.T) {
	repo := &stubJobRepo{}
	cache := &stubCache{jobs: []*domain.Job{{ID: "stale"}}}
	svc := NewJobService(repo, cache, zerolog.Nop())

	if _, err := svc.CreateJob(context.Background(), ports.CreateJobInput{Category: "content"}); err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidated)
	}
}

func TestJobService_ListJobs_CacheHit(t *testing.T) {
	repo := &stubJobRepo{}
	cached := []*domain.Job{{ID: "cached_1"}}
	svc := NewJobService(repo, &stubCache{jobs: cached}, zerolog.Nop())

	jobs, err := svc.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "cached_1" {
		t.Fatalf("expected cached listing, got %+v", jobs)
	}
	if repo.calls != 0 {
		t.Fatalf("repository should not be hit on a cache hit")
	}
}

func TestJobService_ListJobs_CacheMissPopulates(t *testing.T) {
	repo := &stubJobRepo{jobs: []*domain.Job{{ID: "db_1"}}}
	cache := &stubCache{}
	svc := NewJobService(repo, cache, zerolog.Nop())

	jobs, err := svc.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "db_1" {
		t.Fatalf("expected repository listing, got %+v", jobs)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache write after miss, got %d", cache.sets)
	}
}

func TestJobService_ListJobs_CacheErrorFallsThrough(t *testing.T) {
	repo := &stubJobRepo{jobs: []*domain.Job{{ID: "db_1"}}}
	cache := &stubCache{getErr: errors.New("redis down")}
	svc := NewJobService(repo, cache, zerolog.Nop())

	jobs, err := svc.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected repository fallback, got %d calls", repo.calls)
	}
	if len(jobs) != 1 {
		t.Fatalf("unexpected listing: %+v", jobs)
	}
}

func TestJobService_ListJobs_RepoError(t *testing.T) {
	repo := &stubJobRepo{listErr: errors.New("connection reset")}
	svc := NewJobService(repo, nil, zerolog.Nop())

	if _, err := svc.ListJobs(context.Background()); err == nil {
		t.Fatalf("expected error from repository")
	}
}
