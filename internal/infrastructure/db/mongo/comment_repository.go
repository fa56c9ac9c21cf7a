package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusnet/social-api/internal/core/domain"
)

const commentsCollection = "comments"

// MongoCommentRepository persists comments. The ON_POST edge is the post_id
// field; the AUTHORED edge is author_id.
type MongoCommentRepository struct {
	comments *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{comments: db.Collection(commentsCollection)}
}

func (r *MongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *MongoCommentRepository) ListForPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.comments.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.Comment{}
	for cur.Next(ctx) {
		var comment domain.Comment
		if err := cur.Decode(&comment); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		out = append(out, &comment)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return out, nil
}

func (r *MongoCommentRepository) UpdateContent(ctx context.Context, id, authorID, content string) (*domain.Comment, error) {
	filter := bson.M{"_id": id, "author_id": authorID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment domain.Comment
	if err := r.comments.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M{"content": content}}, opts).Decode(&comment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &comment, nil
}

func (r *MongoCommentRepository) Delete(ctx context.Context, id, authorID string) error {
	res, err := r.comments.DeleteOne(ctx, bson.M{"_id": id, "author_id": authorID})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
