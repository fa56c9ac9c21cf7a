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

// CommentService implements comment use cases.
type CommentService struct {
	repo  ports.CommentRepository
	posts ports.PostRepository
	guard *OwnershipGuard
	log   zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, posts ports.PostRepository, guard *OwnershipGuard, log zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, posts: posts, guard: guard, log: log}
}

func (s *CommentService) Create(ctx context.Context, principalID, postID, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("create comment: content is required")
	}

	// Attaching to a post requires the post to exist. This is a plain
	// existence check, not an ownership check: anyone may comment.
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPostNotFound
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		AuthorID:  principalID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", comment.ID).Str("post_id", postID).Msg("comment created")
	return comment, nil
}

func (s *CommentService) ListForPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.repo.ListForPost(ctx, postID)
}

func (s *CommentService) Update(ctx context.Context, principalID, commentID, content string) (*domain.Comment, error) {
	if err := s.guard.Assert(ctx, principalID, commentID, domain.KindComment); err != nil {
		return nil, err
	}
	return s.repo.UpdateContent(ctx, commentID, principalID, content)
}

func (s *CommentService) Delete(ctx context.Context, principalID, commentID string) error {
	if err := s.guard.Assert(ctx, principalID, commentID, domain.KindComment); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, commentID, principalID); err != nil {
		return err
	}
	s.log.Info().Str("comment_id", commentID).Msg("comment deleted")
	return nil
}
