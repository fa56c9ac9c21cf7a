package ports

import (
	"context"

	"github.com/campusnet/social-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts and LIKED edges.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns all posts, newest first.
	List(ctx context.Context) ([]*domain.Post, error)
	// ListFeed returns posts authored by users the follower follows,
	// newest first.
	ListFeed(ctx context.Context, followerID string) ([]*domain.Post, error)
	// UpdateContent rewrites the post body. The update is additionally
	// filtered by authorID so a concurrent ownership change cannot mutate
	// someone else's post.
	UpdateContent(ctx context.Context, id, authorID, content string) (*domain.Post, error)
	Delete(ctx context.Context, id, authorID string) error
	Exists(ctx context.Context, id string) (bool, error)

	// Like records a LIKED edge; liking twice is a no-op.
	Like(ctx context.Context, userID, postID string) error
	CountLikes(ctx context.Context, postID string) (int64, error)
}
