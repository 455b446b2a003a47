package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
)

var (
	// ErrContentNotFound is returned when a content item is not found.
	ErrContentNotFound = errors.New("content not found")
	// ErrNotContentOwner is returned when a delete is attempted by a
	// non-owner.
	ErrNotContentOwner = errors.New("content not owned by user")
)

// ContentRepository is the MongoDB implementation of IContentRepository.
// Blogs and videos live in separate collections mirroring the remote
// store's layout.
type ContentRepository struct {
	blogs  *mongo.Collection
	videos *mongo.Collection
}

// NewContentRepository creates and returns a new ContentRepository instance.
func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		blogs:  db.Collection("blogs"),
		videos: db.Collection("videos"),
	}
}

var _ contract.IContentRepository = (*ContentRepository)(nil)

func (r *ContentRepository) collection(kind entity.ContentKind) *mongo.Collection {
	if kind == entity.ContentKindVideo {
		return r.videos
	}
	return r.blogs
}

// Create inserts a new content record.
func (r *ContentRepository) Create(ctx context.Context, content *entity.Content) error {
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now()
	}
	content.UpdatedAt = time.Now()
	if _, err := r.collection(content.Kind).InsertOne(ctx, content); err != nil {
		return fmt.Errorf("failed to create %s: %w", content.Kind, err)
	}
	return nil
}

// GetByID retrieves one content item.
func (r *ContentRepository) GetByID(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, error) {
	var content entity.Content
	err := r.collection(kind).FindOne(ctx, bson.M{"_id": id}).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve %s: %w", kind, err)
	}
	content.Kind = kind
	return &content, nil
}

// List returns the latest items of a kind, newest first, offset sliced.
func (r *ContentRepository) List(ctx context.Context, kind entity.ContentKind, p contract.Pagination) ([]*entity.Content, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(p.Offset)).
		SetLimit(int64(p.Limit))
	cur, err := r.collection(kind).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer cur.Close(ctx)

	return decodeContent(ctx, cur, kind)
}

// ListSavedBy returns the blogs whose saved-by set contains userID.
func (r *ContentRepository) ListSavedBy(ctx context.Context, userID string, p contract.Pagination) ([]*entity.Content, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(p.Offset)).
		SetLimit(int64(p.Limit))
	cur, err := r.blogs.Find(ctx, bson.M{"saved_by": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved blogs: %w", err)
	}
	defer cur.Close(ctx)

	return decodeContent(ctx, cur, entity.ContentKindBlog)
}

// Delete removes a content item owned by ownerID. Comments are not
// cascaded.
func (r *ContentRepository) Delete(ctx context.Context, kind entity.ContentKind, id, ownerID string) error {
	res, err := r.collection(kind).DeleteOne(ctx, bson.M{"_id": id, "author_id": ownerID})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotContentOwner
	}
	return nil
}

// Like adds userID to the liked-by set and increments the like counter. The
// pair rides one UpdateOne, so the store's per-document atomicity covers
// both operators.
func (r *ContentRepository) Like(ctx context.Context, kind entity.ContentKind, id, userID string) error {
	update := bson.M{
		"$addToSet": bson.M{"liked_by": userID},
		"$inc":      bson.M{"like_count": 1},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	return r.applyEngagement(ctx, kind, id, update)
}

// Unlike removes userID from the liked-by set and decrements the like
// counter.
func (r *ContentRepository) Unlike(ctx context.Context, kind entity.ContentKind, id, userID string) error {
	update := bson.M{
		"$pull": bson.M{"liked_by": userID},
		"$inc":  bson.M{"like_count": -1},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.applyEngagement(ctx, kind, id, update)
}

// Save adds userID to the saved-by set. Saves carry no counter.
func (r *ContentRepository) Save(ctx context.Context, kind entity.ContentKind, id, userID string) error {
	update := bson.M{
		"$addToSet": bson.M{"saved_by": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	return r.applyEngagement(ctx, kind, id, update)
}

// Unsave removes userID from the saved-by set.
func (r *ContentRepository) Unsave(ctx context.Context, kind entity.ContentKind, id, userID string) error {
	update := bson.M{
		"$pull": bson.M{"saved_by": userID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.applyEngagement(ctx, kind, id, update)
}

// IncrementComments adjusts the comment counter by delta.
func (r *ContentRepository) IncrementComments(ctx context.Context, kind entity.ContentKind, id string, delta int) error {
	update := bson.M{
		"$inc": bson.M{"comment_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	return r.applyEngagement(ctx, kind, id, update)
}

func (r *ContentRepository) applyEngagement(ctx context.Context, kind entity.ContentKind, id string, update bson.M) error {
	res, err := r.collection(kind).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update %s engagement: %w", kind, err)
	}
	if res.MatchedCount == 0 {
		return ErrContentNotFound
	}
	return nil
}

func decodeContent(ctx context.Context, cur *mongo.Cursor, kind entity.ContentKind) ([]*entity.Content, error) {
	var out []*entity.Content
	for cur.Next(ctx) {
		var c entity.Content
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode content: %w", err)
		}
		c.Kind = kind
		out = append(out, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("content cursor error: %w", err)
	}
	return out, nil
}
