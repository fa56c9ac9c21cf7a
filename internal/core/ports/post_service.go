package ports

import (
	"context"
	"io"

	"github.com/campusnet/social-api/internal/core/domain"
)

// ImageUpload describes an optional image attached to a new post.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// CreatePostInput carries the data needed to publish a post.
type CreatePostInput struct {
	AuthorID string
	Content  string
	Image    *ImageUpload
}

// LikeResult is returned after liking a post.
type LikeResult struct {
	PostID string
	Likes  int64
}

// PostService defines post use cases. Update and Delete are gated by the
// ownership guard; reads are not.
type PostService interface {
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, principalID, postID, content string) (*domain.Post, error)
	Delete(ctx context.Context, principalID, postID string) error
	Like(ctx context.Context, principalID, postID string) (*LikeResult, error)
}
