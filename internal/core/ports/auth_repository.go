package ports

import (
	"context"

	"github.com/freelancehub/job-board/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// unique email index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail retrieves a user by email, password hash included.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
