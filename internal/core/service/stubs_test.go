package service

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/campusnet/social-api/internal/core/domain"
	"github.com/campusnet/social-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
	// follows maps followerID -> set of followeeIDs
	follows map[string]map[string]bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:   make(map[string]*domain.User),
		follows: make(map[string]map[string]bool),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.ProfilePic != nil {
		u.ProfilePic = *upd.ProfilePic
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubUserRepo) Search(_ context.Context, query string, limit int) ([]*domain.User, error) {
	var out []*domain.User
	q := strings.ToLower(query)
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, cloneUser(u))
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubUserRepo) Follow(_ context.Context, followerID, followeeID string) error {
	if r.follows[followerID] == nil {
		r.follows[followerID] = make(map[string]bool)
	}
	r.follows[followerID][followeeID] = true
	return nil
}

func (r *stubUserRepo) Unfollow(_ context.Context, followerID, followeeID string) error {
	delete(r.follows[followerID], followeeID)
	return nil
}

type stubPostRepo struct {
	posts map[string]*domain.Post
	likes map[string]map[string]bool // postID -> set of userIDs
	users *stubUserRepo              // for feed resolution; may be nil
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{
		posts: make(map[string]*domain.Post),
		likes: make(map[string]map[string]bool),
	}
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) error {
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		return clonePost(p), nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPostRepo) ListFeed(_ context.Context, followerID string) ([]*domain.Post, error) {
	var followees map[string]bool
	if r.users != nil {
		followees = r.users.follows[followerID]
	}
	var out []*domain.Post
	for _, p := range r.posts {
		if followees[p.AuthorID] {
			out = append(out, clonePost(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPostRepo) UpdateContent(_ context.Context, id, authorID, content string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return nil, domain.ErrPostNotFound
	}
	p.Content = content
	return clonePost(p), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id, authorID string) error {
	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.posts[id]
	return ok, nil
}

func (r *stubPostRepo) Like(_ context.Context, userID, postID string) error {
	if r.likes[postID] == nil {
		r.likes[postID] = make(map[string]bool)
	}
	r.likes[postID][userID] = true
	return nil
}

func (r *stubPostRepo) CountLikes(_ context.Context, postID string) (int64, error) {
	return int64(len(r.likes[postID])), nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *stubCommentRepo) ListForPost(_ context.Context, postID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubCommentRepo) UpdateContent(_ context.Context, id, authorID, content string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok || c.AuthorID != authorID {
		return nil, domain.ErrCommentNotFound
	}
	c.Content = content
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id, authorID string) error {
	c, ok := r.comments[id]
	if !ok || c.AuthorID != authorID {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// stubEdges answers authorship queries from the post/comment stubs.
type stubEdges struct {
	posts    *stubPostRepo
	comments *stubCommentRepo
}

func (e *stubEdges) HasAuthorship(_ context.Context, authorID, entityID string, kind domain.EntityKind) (bool, error) {
	switch kind {
	case domain.KindPost:
		p, ok := e.posts.posts[entityID]
		return ok && p.AuthorID == authorID, nil
	case domain.KindComment:
		c, ok := e.comments.comments[entityID]
		return ok && c.AuthorID == authorID, nil
	}
	return false, nil
}

// stubThrottle blocks an identifier after maxFailures recorded failures.
type stubThrottle struct {
	maxFailures int
	failures    map[string]int
}

func newStubThrottle(maxFailures int) *stubThrottle {
	return &stubThrottle{maxFailures: maxFailures, failures: make(map[string]int)}
}

func (t *stubThrottle) Allow(_ context.Context, identifier string) (bool, error) {
	return t.failures[identifier] < t.maxFailures, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, identifier string) error {
	t.failures[identifier]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, identifier string) error {
	delete(t.failures, identifier)
	return nil
}

// stubImageStore records saves and returns a predictable URL.
type stubImageStore struct {
	saved []string
}

func (s *stubImageStore) Save(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	s.saved = append(s.saved, filename)
	return "/uploads/" + filename, nil
}
