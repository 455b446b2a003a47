package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// NotificationTarget identifies the content a notification points at.
type NotificationTarget struct {
	ID   string
	Kind entity.ContentKind
}

// INotificationUseCase is the fan-out protocol plus the recipient-facing
// notification operations.
type INotificationUseCase interface {
	// Notify writes one notification record addressed to recipientID.
	// It is a no-op when recipient and actor are the same user. Failures
	// are logged and swallowed; Notify never returns an error so that it
	// can never roll back the triggering mutation.
	Notify(ctx context.Context, recipientID string, actor entity.Viewer, kind entity.NotificationKind, target NotificationTarget, content string)

	List(ctx context.Context, recipientID string, offset, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID string) error
	ClearAll(ctx context.Context, recipientID string) (int64, error)
}
