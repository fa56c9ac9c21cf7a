package service

import (
	"context"
	"testing"
	"time"

	"github.com/campusnet/social-api/internal/core/domain"
)

func newTestGuard() (*OwnershipGuard, *stubPostRepo, *stubCommentRepo) {
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	return NewOwnershipGuard(&stubEdges{posts: posts, comments: comments}), posts, comments
}

func TestOwnershipGuard_Owner(t *testing.T) {
	guard, posts, _ := newTestGuard()
	posts.posts["p1"] = &domain.Post{ID: "p1", AuthorID: "u1", CreatedAt: time.Now()}

	if err := guard.Assert(context.Background(), "u1", "p1", domain.KindPost); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
}

func TestOwnershipGuard_NotOwner(t *testing.T) {
	guard, posts, _ := newTestGuard()
	posts.posts["p1"] = &domain.Post{ID: "p1", AuthorID: "u1", CreatedAt: time.Now()}

	if err := guard.Assert(context.Background(), "u2", "p1", domain.KindPost); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOwnershipGuard_MissingEntity(t *testing.T) {
	guard, _, _ := newTestGuard()

	// A missing entity is indistinguishable from a foreign-owned one.
	if err := guard.Assert(context.Background(), "u1", "nope", domain.KindPost); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOwnershipGuard_CommentKind(t *testing.T) {
	guard, _, comments := newTestGuard()
	comments.comments["c1"] = &domain.Comment{ID: "c1", PostID: "p1", AuthorID: "u1", CreatedAt: time.Now()}

	if err := guard.Assert(context.Background(), "u1", "c1", domain.KindComment); err != nil {
		t.Fatalf("comment owner rejected: %v", err)
	}
	if err := guard.Assert(context.Background(), "u1", "c1", domain.KindPost); err != domain.ErrForbidden {
		t.Fatalf("kind mismatch should be ErrForbidden, got %v", err)
	}
}
