package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusnet/social-api/internal/core/domain"
)

// MongoAuthorshipRepository answers the ownership guard's edge-existence
// queries against the posts and comments collections.
type MongoAuthorshipRepository struct {
	posts    *mongo.Collection
	comments *mongo.Collection
}

func NewAuthorshipRepository(db *mongo.Database) *MongoAuthorshipRepository {
	return &MongoAuthorshipRepository{
		posts:    db.Collection(postsCollection),
		comments: db.Collection(commentsCollection),
	}
}

func (r *MongoAuthorshipRepository) HasAuthorship(ctx context.Context, authorID, entityID string, kind domain.EntityKind) (bool, error) {
	var coll *mongo.Collection
	switch kind {
	case domain.KindPost:
		coll = r.posts
	case domain.KindComment:
		coll = r.comments
	default:
		return false, fmt.Errorf("authorship: unknown entity kind %q", kind)
	}

	filter := bson.M{"_id": entityID, "author_id": authorID}
	n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("authorship lookup: %w", err)
	}
	return n > 0, nil
}
