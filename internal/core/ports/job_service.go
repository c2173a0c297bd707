package ports

import (
	"context"

	"github.com/freelancehub/job-board/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job. ClientID comes
// from the authenticated caller, never from the request body.
type CreateJobInput struct {
	Title       string
	Description string
	Category    string
	BudgetMin   float64
	BudgetMax   float64
	ClientID    string
}

// JobService defines use-case operations for job postings.
type JobService interface {
	CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]*domain.Job, error)
}
