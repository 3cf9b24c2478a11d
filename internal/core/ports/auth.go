package ports

import (
	"context"

	"github.com/realto/plots-api/internal/core/domain"
)

// AuthRepository defines persistence for stored accounts.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Authenticate verifies credentials and returns the stored account.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
