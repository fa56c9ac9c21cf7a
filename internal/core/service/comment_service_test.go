package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusnet/social-api/internal/core/domain"
)

func newTestComments(t *testing.T) (*CommentService, *stubPostRepo, *stubCommentRepo) {
	t.Helper()
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	guard := NewOwnershipGuard(&stubEdges{posts: posts, comments: comments})
	return NewCommentService(comments, posts, guard, zerolog.Nop()), posts, comments
}

func TestCommentService_Create(t *testing.T) {
	svc, posts, repo := newTestComments(t)
	posts.posts["p1"] = &domain.Post{ID: "p1", AuthorID: "u1", CreatedAt: time.Now()}

	comment, err := svc.Create(context.Background(), "u2", "p1", "nice post")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if comment.PostID != "p1" || comment.AuthorID != "u2" {
		t.Fatalf("unexpected comment: %+v", comment)
	}
	if _, ok := repo.comments[comment.ID]; !ok {
		t.Fatalf("comment not persisted")
	}
}

func TestCommentService_Create_MissingPost(t *testing.T) {
	svc, _, _ := newTestComments(t)

	if _, err := svc.Create(context.Background(), "u1", "nope", "hello"); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_ListForPost_Ordering(t *testing.T) {
	svc, posts, repo := newTestComments(t)
	posts.posts["p1"] = &domain.Post{ID: "p1", AuthorID: "u1", CreatedAt: time.Now()}

	base := time.Now().UTC()
	repo.comments["c2"] = &domain.Comment{ID: "c2", PostID: "p1", AuthorID: "u1", Content: "second", CreatedAt: base.Add(time.Minute)}
	repo.comments["c1"] = &domain.Comment{ID: "c1", PostID: "p1", AuthorID: "u1", Content: "first", CreatedAt: base}
	repo.comments["other"] = &domain.Comment{ID: "other", PostID: "p2", AuthorID: "u1", CreatedAt: base}

	got, err := svc.ListForPost(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ListForPost returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c2" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestCommentService_Update_OwnershipEnforced(t *testing.T) {
	svc, posts, _ := newTestComments(t)
	posts.posts["p1"] = &domain.Post{ID: "p1", AuthorID: "u1", CreatedAt: time.Now()}

	comment, err := svc.Create(context.Background(), "u2", "p1", "v1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(context.Background(), "u1", comment.ID, "hacked"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), "u2", comment.ID, "v2")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Content != "v2" {
		t.Fatalf("content not updated: %s", updated.Content)
	}
}

func TestCommentService_Delete_OwnershipEnforced(t *testing.T) {
	svc, posts, repo := newTestComments(t)
	posts.posts["p1"] = &domain.Post{ID: "p1", AuthorID: "u1", CreatedAt: time.Now()}

	comment, err := svc.Create(context.Background(), "u2", "p1", "bye")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), "u1", comment.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u2", comment.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.comments[comment.ID]; ok {
		t.Fatalf("comment still present after delete")
	}
}
