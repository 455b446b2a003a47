package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	"github.com/yonatanberih/pulse/internal/infrastructure/metrics"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// NotificationUsecase is the fan-out protocol plus the recipient-facing
// notification operations. Fan-out is fire-and-forget relative to the
// triggering mutation: a failed write or publish is logged and swallowed and
// never rolls back a like or comment.
type NotificationUsecase struct {
	repo      contract.INotificationRepository
	publisher contract.INotificationPublisher
	uuidGen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
}

// NewNotificationUsecase creates and returns a new NotificationUsecase
// instance. publisher may be nil when live delivery is not configured.
func NewNotificationUsecase(
	repo contract.INotificationRepository,
	publisher contract.INotificationPublisher,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *NotificationUsecase {
	return &NotificationUsecase{
		repo:      repo,
		publisher: publisher,
		uuidGen:   uuidGen,
		logger:    logger,
	}
}

var _ usecasecontract.INotificationUseCase = (*NotificationUsecase)(nil)

// Notify writes one notification record addressed to recipientID with the
// actor's profile denormalized into it. No-op when the actor is the
// recipient. There is no dedup: repeated toggling produces repeated records.
func (u *NotificationUsecase) Notify(ctx context.Context, recipientID string, actor entity.Viewer, kind entity.NotificationKind, target usecasecontract.NotificationTarget, content string) {
	if recipientID == actor.ID {
		return
	}
	n := &entity.Notification{
		ID:          u.uuidGen.NewUUID(),
		RecipientID: recipientID,
		ActorID:     actor.ID,
		ActorName:   actor.DisplayName(),
		ActorPhoto:  actor.PhotoURL,
		Kind:        kind,
		TargetID:    target.ID,
		TargetKind:  target.Kind,
		Content:     content,
		IsRead:      false,
		CreatedAt:   time.Now(),
	}
	if err := u.repo.Create(ctx, n); err != nil {
		metrics.FanoutFailuresTotal.Inc()
		u.logger.Errorf("notification write failed (recipient=%s kind=%s): %v", recipientID, kind, err)
		return
	}
	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, n); err != nil {
			metrics.FanoutFailuresTotal.Inc()
			u.logger.Warnf("notification publish failed (id=%s): %v", n.ID, err)
		}
	}
}

// List returns the recipient's notifications, newest first.
func (u *NotificationUsecase) List(ctx context.Context, recipientID string, offset, limit int) ([]*entity.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := u.repo.ListByRecipient(ctx, recipientID, contract.Pagination{Offset: offset, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

// MarkRead flags one of the recipient's notifications as read.
func (u *NotificationUsecase) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	if err := u.repo.MarkRead(ctx, recipientID, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// ClearAll deletes every notification addressed to the recipient.
func (u *NotificationUsecase) ClearAll(ctx context.Context, recipientID string) (int64, error) {
	n, err := u.repo.DeleteByRecipient(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear notifications: %w", err)
	}
	return n, nil
}
