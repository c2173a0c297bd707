package ports

import (
	"context"

	"github.com/freelancehub/job-board/internal/core/domain"
)

type AuthService interface {
	// Register creates a user with a hashed password and returns it together
	// with a freshly issued token.
	Register(ctx context.Context, name, email, password string, role domain.Role) (string, *domain.User, error)
	// Login verifies credentials and issues a token. Unknown email and wrong
	// password are indistinguishable: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
