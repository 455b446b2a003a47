package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// ErrUserNotFound is returned when a user lookup matches nothing.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the MongoDB implementation of IUserRepository.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates and returns a new UserRepository instance.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

var _ contract.IUserRepository = (*UserRepository)(nil)

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetUserByEmail retrieves a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

// UpdateProfile sets the given profile fields on a user document.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Follow records followerID following followeeID. Two documents change:
// the follower's following set and the followee's followers set. The
// writes are issued in order; if the second fails the first is undone
// best-effort before the error is returned.
func (r *UserRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	if err := r.updateSet(ctx, followerID, "$addToSet", "following", followeeID); err != nil {
		return err
	}
	if err := r.updateSet(ctx, followeeID, "$addToSet", "followers", followerID); err != nil {
		// Compensate; the original error stays the caller's answer.
		_ = r.updateSet(ctx, followerID, "$pull", "following", followeeID)
		return err
	}
	return nil
}

// Unfollow removes the paired follow edges, compensating as Follow does.
func (r *UserRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	if err := r.updateSet(ctx, followerID, "$pull", "following", followeeID); err != nil {
		return err
	}
	if err := r.updateSet(ctx, followeeID, "$pull", "followers", followerID); err != nil {
		_ = r.updateSet(ctx, followerID, "$addToSet", "following", followeeID)
		return err
	}
	return nil
}

func (r *UserRepository) updateSet(ctx context.Context, userID, op, field, memberID string) error {
	update := bson.M{
		op:     bson.M{field: memberID},
		"$set": bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// IsFollowing reports whether followerID currently follows followeeID.
func (r *UserRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": followerID, "following": followeeID})
	if err != nil {
		return false, fmt.Errorf("failed to check follow state: %w", err)
	}
	return count > 0, nil
}

// ListFollowers resolves the users following userID.
func (r *UserRepository) ListFollowers(ctx context.Context, userID string) ([]*entity.User, error) {
	return r.listEdge(ctx, userID, "followers")
}

// ListFollowing resolves the users userID follows.
func (r *UserRepository) ListFollowing(ctx context.Context, userID string) ([]*entity.User, error) {
	return r.listEdge(ctx, userID, "following")
}

func (r *UserRepository) listEdge(ctx context.Context, userID, field string) ([]*entity.User, error) {
	owner, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := owner.Followers
	if field == "following" {
		ids = owner.Following
	}
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", field, err)
	}
	defer cur.Close(ctx)

	var users []*entity.User
	for cur.Next(ctx) {
		var u entity.User
		if err := cur.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, &u)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("user cursor error: %w", err)
	}
	return users, nil
}
