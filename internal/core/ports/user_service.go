package ports

import (
	"context"

	"github.com/campusnet/social-api/internal/core/domain"
)

// UserService defines profile and social-graph use cases.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*domain.User, error)
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	// Feed returns posts authored by users the given user follows,
	// newest first.
	Feed(ctx context.Context, userID string) ([]*domain.Post, error)
	Search(ctx context.Context, query string) ([]*domain.User, error)
}
