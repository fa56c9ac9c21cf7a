package ports

import (
	"context"

	"github.com/campusnet/social-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	// ListForPost returns a post's comments, oldest first.
	ListForPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	UpdateContent(ctx context.Context, id, authorID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id, authorID string) error
}
