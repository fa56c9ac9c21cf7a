package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campusnet/social-api/internal/core/domain"
	"github.com/campusnet/social-api/internal/core/ports"
)

const searchLimit = 50

// UserService implements profile and social-graph use cases.
type UserService struct {
	users ports.UserRepository
	posts ports.PostRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, posts ports.PostRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, posts: posts, log: log}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// UpdateProfile mutates bio and profile picture only. Identity fields
// (id, username, email, password) are not reachable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	if upd.Bio == nil && upd.ProfilePic == nil {
		return s.Get(ctx, id)
	}
	user, err := s.users.UpdateProfile(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *UserService) Follow(ctx context.Context, followerID, followeeID string) error {
	if _, err := s.users.FindByID(ctx, followeeID); err != nil {
		return err
	}
	if err := s.users.Follow(ctx, followerID, followeeID); err != nil {
		return err
	}
	s.log.Info().Str("follower_id", followerID).Str("followee_id", followeeID).Msg("follow recorded")
	return nil
}

func (s *UserService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return s.users.Unfollow(ctx, followerID, followeeID)
}

func (s *UserService) Feed(ctx context.Context, userID string) ([]*domain.Post, error) {
	return s.posts.ListFeed(ctx, userID)
}

func (s *UserService) Search(ctx context.Context, query string) ([]*domain.User, error) {
	users, err := s.users.Search(ctx, query, searchLimit)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return []*domain.User{}, nil
		}
		return nil, err
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}
