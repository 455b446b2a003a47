package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// INotificationRepository is the persistence boundary for notification
// records.
type INotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	// ListByRecipient returns the recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientID string, p Pagination) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID string) error
	// DeleteByRecipient removes every notification addressed to the
	// recipient and returns how many were deleted.
	DeleteByRecipient(ctx context.Context, recipientID string) (int64, error)
}
