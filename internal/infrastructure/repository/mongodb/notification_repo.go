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

// ErrNotificationNotFound is returned when a notification lookup matches
// nothing for the recipient.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository is the MongoDB implementation of
// INotificationRepository.
type NotificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository creates and returns a new NotificationRepository
// instance.
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection("notifications")}
}

var _ contract.INotificationRepository = (*NotificationRepository)(nil)

// Create inserts a notification record.
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	if _, err := r.collection.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByRecipient returns the recipient's notifications, newest first.
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string, p contract.Pagination) ([]*entity.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(p.Offset)).
		SetLimit(int64(p.Limit))
	cur, err := r.collection.Find(ctx, bson.M{"recipient_id": recipientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cur.Close(ctx)

	var out []*entity.Notification
	for cur.Next(ctx) {
		var n entity.Notification
		if err := cur.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		out = append(out, &n)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("notification cursor error: %w", err)
	}
	return out, nil
}

// MarkRead flags one of the recipient's notifications as read.
func (r *NotificationRepository) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	filter := bson.M{"_id": notificationID, "recipient_id": recipientID}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// DeleteByRecipient removes every notification addressed to the recipient.
func (r *NotificationRepository) DeleteByRecipient(ctx context.Context, recipientID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"recipient_id": recipientID})
	if err != nil {
		return 0, fmt.Errorf("failed to clear notifications: %w", err)
	}
	return res.DeletedCount, nil
}
