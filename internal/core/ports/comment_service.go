package ports

import (
	"context"

	"github.com/campusnet/social-api/internal/core/domain"
)

// CommentService defines comment use cases. Update and Delete are gated by
// the ownership guard.
type CommentService interface {
	// Create attaches a comment to a post; fails with domain.ErrPostNotFound
	// when the post does not exist.
	Create(ctx context.Context, principalID, postID, content string) (*domain.Comment, error)
	ListForPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	Update(ctx context.Context, principalID, commentID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, principalID, commentID string) error
}
