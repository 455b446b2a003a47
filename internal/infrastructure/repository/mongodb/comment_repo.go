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

// ErrCommentNotFound is returned when a comment lookup matches nothing.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository is the MongoDB implementation of ICommentRepository.
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates and returns a new CommentRepository instance.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{collection: db.Collection("comments")}
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

// Create appends a comment record. Comments are never updated after insert.
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByID retrieves one comment.
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve comment: %w", err)
	}
	return &comment, nil
}

// ListByContent returns every comment on an item, newest first.
func (r *CommentRepository) ListByContent(ctx context.Context, kind entity.ContentKind, contentID string) ([]*entity.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{"content_kind": kind, "content_id": contentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cur.Close(ctx)

	var comments []*entity.Comment
	for cur.Next(ctx) {
		var c entity.Comment
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("comment cursor error: %w", err)
	}
	return comments, nil
}

// CountByContent counts the comments on an item.
func (r *CommentRepository) CountByContent(ctx context.Context, kind entity.ContentKind, contentID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"content_kind": kind, "content_id": contentID})
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
