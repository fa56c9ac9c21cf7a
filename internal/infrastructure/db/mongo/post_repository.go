package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusnet/social-api/internal/core/domain"
)

const postsCollection = "posts"

// MongoPostRepository persists posts and LIKED edges. It reads the follows
// collection for feed resolution (a two-hop traversal: user -> followees ->
// their posts).
type MongoPostRepository struct {
	posts   *mongo.Collection
	likes   *mongo.Collection
	follows *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{
		posts:   db.Collection(postsCollection),
		likes:   db.Collection(likesCollection),
		follows: db.Collection(followsCollection),
	}
}

type likeEdge struct {
	UserID string `bson:"user_id"`
	PostID string `bson:"post_id"`
}

func (r *MongoPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	if err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

func (r *MongoPostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPostRepository) ListFeed(ctx context.Context, followerID string) ([]*domain.Post, error) {
	cur, err := r.follows.Find(ctx, bson.M{"follower_id": followerID})
	if err != nil {
		return nil, fmt.Errorf("load follow edges: %w", err)
	}
	defer cur.Close(ctx)

	var followees []string
	for cur.Next(ctx) {
		var edge followEdge
		if err := cur.Decode(&edge); err != nil {
			return nil, fmt.Errorf("decode follow edge: %w", err)
		}
		followees = append(followees, edge.FolloweeID)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate follow edges: %w", err)
	}
	if len(followees) == 0 {
		return []*domain.Post{}, nil
	}

	return r.find(ctx, bson.M{"author_id": bson.M{"$in": followees}})
}

func (r *MongoPostRepository) find(ctx context.Context, filter bson.M) ([]*domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.Post{}
	for cur.Next(ctx) {
		var post domain.Post
		if err := cur.Decode(&post); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		out = append(out, &post)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return out, nil
}

// UpdateContent rewrites the body. The author filter means a post that lost
// an ownership race reads as not found rather than being overwritten.
func (r *MongoPostRepository) UpdateContent(ctx context.Context, id, authorID, content string) (*domain.Post, error) {
	filter := bson.M{"_id": id, "author_id": authorID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post domain.Post
	if err := r.posts.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M{"content": content}}, opts).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &post, nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id, authorID string) error {
	res, err := r.posts.DeleteOne(ctx, bson.M{"_id": id, "author_id": authorID})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	if _, err := r.likes.DeleteMany(ctx, bson.M{"post_id": id}); err != nil {
		return fmt.Errorf("delete like edges: %w", err)
	}
	return nil
}

func (r *MongoPostRepository) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.posts.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("post exists: %w", err)
	}
	return n > 0, nil
}

// Like upserts the LIKED edge; repeats are a no-op thanks to the compound
// unique index.
func (r *MongoPostRepository) Like(ctx context.Context, userID, postID string) error {
	filter := bson.M{"user_id": userID, "post_id": postID}
	update := bson.M{"$setOnInsert": likeEdge{UserID: userID, PostID: postID}}
	if _, err := r.likes.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("like post: %w", err)
	}
	return nil
}

func (r *MongoPostRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	n, err := r.likes.CountDocuments(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}
