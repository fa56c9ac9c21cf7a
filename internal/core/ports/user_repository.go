package ports

import (
	"context"

	"github.com/campusnet/social-api/internal/core/domain"
)

// ProfileUpdate carries the only user fields mutable through the profile
// path. Nil means "leave unchanged".
type ProfileUpdate struct {
	Bio        *string
	ProfilePic *string
}

// UserRepository defines persistence operations for users and the FOLLOWS
// edges between them.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username or email collides with an existing user.
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateProfile applies upd and returns the updated record.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*domain.User, error)
	// Delete removes the user and its follow/like edges.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
	// Search matches query as a case-insensitive substring of username or
	// email, returning at most limit users.
	Search(ctx context.Context, query string, limit int) ([]*domain.User, error)

	// Follow records a FOLLOWS edge; following twice is a no-op.
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
}
