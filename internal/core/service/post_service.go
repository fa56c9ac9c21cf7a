package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusnet/social-api/internal/core/domain"
	"github.com/campusnet/social-api/internal/core/ports"
)

// PostService implements post use cases over the repository and image store.
type PostService struct {
	repo   ports.PostRepository
	guard  *OwnershipGuard
	images ports.ImageStore
	log    zerolog.Logger
}

func NewPostService(repo ports.PostRepository, guard *OwnershipGuard, images ports.ImageStore, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, guard: guard, images: images, log: log}
}

func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if in.Content == "" {
		return nil, fmt.Errorf("create post: content is required")
	}

	var imageURL string
	if in.Image != nil {
		url, err := s.images.Save(ctx, in.Image.Filename, in.Image.ContentType, in.Image.Content)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		imageURL = url
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Str("author_id", post.AuthorID).Msg("post created")
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) Update(ctx context.Context, principalID, postID, content string) (*domain.Post, error) {
	if err := s.guard.Assert(ctx, principalID, postID, domain.KindPost); err != nil {
		return nil, err
	}
	return s.repo.UpdateContent(ctx, postID, principalID, content)
}

func (s *PostService) Delete(ctx context.Context, principalID, postID string) error {
	if err := s.guard.Assert(ctx, principalID, postID, domain.KindPost); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, postID, principalID); err != nil {
		return err
	}
	s.log.Info().Str("post_id", postID).Msg("post deleted")
	return nil
}

// Like records a LIKED edge and returns the post's like count. Liking an
// already-liked post is a no-op; liking a missing post is NotFound, not
// Forbidden — likes are not an ownership operation.
func (s *PostService) Like(ctx context.Context, principalID, postID string) (*ports.LikeResult, error) {
	exists, err := s.repo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPostNotFound
	}

	if err := s.repo.Like(ctx, principalID, postID); err != nil {
		return nil, err
	}
	likes, err := s.repo.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &ports.LikeResult{PostID: postID, Likes: likes}, nil
}
