package ports

import (
	"context"

	"github.com/campusnet/social-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService defines registration, login, and principal resolution.
type AuthService interface {
	// Register creates the account and returns a bearer token whose
	// subject is the registration email, plus the sanitized user.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login authenticates by email or username. The returned token's
	// subject is the identifier exactly as submitted.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	// ResolvePrincipal maps a bearer token back to the sanitized account it
	// belongs to, or fails with domain.ErrUnauthenticated.
	ResolvePrincipal(ctx context.Context, token string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
