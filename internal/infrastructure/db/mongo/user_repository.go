package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusnet/social-api/internal/core/domain"
	"github.com/campusnet/social-api/internal/core/ports"
)

const (
	usersCollection   = "users"
	followsCollection = "follows"
	likesCollection   = "likes"
)

// MongoUserRepository persists users and FOLLOWS edges.
type MongoUserRepository struct {
	users   *mongo.Collection
	follows *mongo.Collection
	likes   *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		users:   db.Collection(usersCollection),
		follows: db.Collection(followsCollection),
		likes:   db.Collection(likesCollection),
	}
}

type mongoUser struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	Bio          string    `bson:"bio,omitempty"`
	ProfilePic   string    `bson:"profile_pic,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

type followEdge struct {
	FollowerID string `bson:"follower_id"`
	FolloweeID string `bson:"followee_id"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Bio:          u.Bio,
		ProfilePic:   u.ProfilePic,
		CreatedAt:    u.CreatedAt,
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Bio:          mu.Bio,
		ProfilePic:   mu.ProfilePic,
		CreatedAt:    mu.CreatedAt,
	}
}

// Create inserts the user. Uniqueness of email and username is enforced by
// the unique indexes; a duplicate-key error surfaces as ErrUserExists.
func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.users.InsertOne(ctx, toMongoUser(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.users.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	set := bson.M{}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.ProfilePic != nil {
		set["profile_pic"] = *upd.ProfilePic
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mu mongoUser
	if err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return mu.toDomain(), nil
}

// Delete removes the user together with its follow and like edges, the
// document equivalent of a detach-delete.
func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}

	edgeFilter := bson.M{"$or": bson.A{
		bson.M{"follower_id": id},
		bson.M{"followee_id": id},
	}}
	if _, err := r.follows.DeleteMany(ctx, edgeFilter); err != nil {
		return fmt.Errorf("delete follow edges: %w", err)
	}
	if _, err := r.likes.DeleteMany(ctx, bson.M{"user_id": id}); err != nil {
		return fmt.Errorf("delete like edges: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cur, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return decodeUsers(ctx, cur)
}

func (r *MongoUserRepository) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"username": pattern},
		bson.M{"email": pattern},
	}}
	opts := options.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "username", Value: 1}})
	cur, err := r.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return decodeUsers(ctx, cur)
}

func decodeUsers(ctx context.Context, cur *mongo.Cursor) ([]*domain.User, error) {
	defer cur.Close(ctx)
	out := []*domain.User{}
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

// Follow upserts the FOLLOWS edge; the compound unique index makes repeat
// follows a no-op instead of a duplicate.
func (r *MongoUserRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	filter := bson.M{"follower_id": followerID, "followee_id": followeeID}
	update := bson.M{"$setOnInsert": followEdge{FollowerID: followerID, FolloweeID: followeeID}}
	if _, err := r.follows.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("follow: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	filter := bson.M{"follower_id": followerID, "followee_id": followeeID}
	if _, err := r.follows.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}
