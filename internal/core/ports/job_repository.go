package ports

import (
	"context"

	"github.com/freelancehub/job-board/internal/core/domain"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// List returns all jobs in storage order, each with its client reference
	// expanded to the poster's name and email.
	List(ctx context.Context) ([]*domain.Job, error)
}
