package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

type fakeNotificationRepo struct {
	mu sync.Mutex

	ShouldFailCreate bool
	Created          []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ShouldFailCreate {
		return errors.New("write failed")
	}
	r.Created = append(r.Created, n)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, p contract.Pagination) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.Created {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.Created {
		if n.ID == notificationID && n.RecipientID == recipientID {
			n.IsRead = true
			return nil
		}
	}
	return errors.New("notification not found")
}

func (r *fakeNotificationRepo) DeleteByRecipient(ctx context.Context, recipientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*entity.Notification
	var deleted int64
	for _, n := range r.Created {
		if n.RecipientID == recipientID {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.Created = kept
	return deleted, nil
}

type fakePublisher struct {
	ShouldFailPublish bool

	mu        sync.Mutex
	Published []*entity.Notification
}

func (p *fakePublisher) Publish(ctx context.Context, n *entity.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ShouldFailPublish {
		return errors.New("broker unavailable")
	}
	p.Published = append(p.Published, n)
	return nil
}

func likeTarget() usecasecontract.NotificationTarget {
	return usecasecontract.NotificationTarget{ID: "v1", Kind: entity.ContentKindVideo}
}

func TestNotifyDenormalizesActor(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := NewNotificationUsecase(repo, nil, &fakeUUIDGen{}, nopLogger{})
	actor := entity.Viewer{ID: "actor-1", Email: "ada@example.com", PhotoURL: "https://p/ada.png"}

	uc.Notify(context.Background(), "owner-1", actor, entity.NotificationKindLike, likeTarget(), "")

	if assert.Len(t, repo.Created, 1) {
		n := repo.Created[0]
		assert.Equal(t, "owner-1", n.RecipientID)
		assert.Equal(t, "actor-1", n.ActorID)
		// Display name falls back to the email local part.
		assert.Equal(t, "ada", n.ActorName)
		assert.Equal(t, "https://p/ada.png", n.ActorPhoto)
		assert.Equal(t, entity.ContentKindVideo, n.TargetKind)
		assert.False(t, n.IsRead)
	}
}

func TestNotifySelfIsNoOp(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := NewNotificationUsecase(repo, nil, &fakeUUIDGen{}, nopLogger{})

	uc.Notify(context.Background(), "actor-1", entity.Viewer{ID: "actor-1"}, entity.NotificationKindLike, likeTarget(), "")
	assert.Empty(t, repo.Created)
}

func TestNotifyHasNoDedup(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := NewNotificationUsecase(repo, nil, &fakeUUIDGen{}, nopLogger{})
	actor := entity.Viewer{ID: "actor-1", Name: "Ada"}

	// Toggle spam produces one record per like.
	uc.Notify(context.Background(), "owner-1", actor, entity.NotificationKindLike, likeTarget(), "")
	uc.Notify(context.Background(), "owner-1", actor, entity.NotificationKindLike, likeTarget(), "")
	assert.Len(t, repo.Created, 2)
}

func TestNotifyWriteFailureIsSwallowed(t *testing.T) {
	repo := &fakeNotificationRepo{ShouldFailCreate: true}
	publisher := &fakePublisher{}
	uc := NewNotificationUsecase(repo, publisher, &fakeUUIDGen{}, nopLogger{})

	// Must not panic or surface anything; nothing reaches the broker
	// either.
	uc.Notify(context.Background(), "owner-1", entity.Viewer{ID: "actor-1"}, entity.NotificationKindComment, likeTarget(), "hey")
	assert.Empty(t, publisher.Published)
}

func TestNotifyPublishFailureKeepsRecord(t *testing.T) {
	repo := &fakeNotificationRepo{}
	publisher := &fakePublisher{ShouldFailPublish: true}
	uc := NewNotificationUsecase(repo, publisher, &fakeUUIDGen{}, nopLogger{})

	uc.Notify(context.Background(), "owner-1", entity.Viewer{ID: "actor-1"}, entity.NotificationKindLike, likeTarget(), "")
	assert.Len(t, repo.Created, 1)
}

func TestNotificationListMarkReadClearAll(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := NewNotificationUsecase(repo, nil, &fakeUUIDGen{}, nopLogger{})
	actor := entity.Viewer{ID: "actor-1", Name: "Ada"}

	uc.Notify(context.Background(), "owner-1", actor, entity.NotificationKindLike, likeTarget(), "")
	uc.Notify(context.Background(), "owner-1", actor, entity.NotificationKindComment, likeTarget(), "hi")
	uc.Notify(context.Background(), "other-1", actor, entity.NotificationKindLike, likeTarget(), "")

	list, err := uc.List(context.Background(), "owner-1", 0, 10)
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	assert.NoError(t, uc.MarkRead(context.Background(), "owner-1", list[0].ID))
	assert.True(t, list[0].IsRead)
	assert.Error(t, uc.MarkRead(context.Background(), "other-1", list[0].ID))

	deleted, err := uc.ClearAll(context.Background(), "owner-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	list, _ = uc.List(context.Background(), "owner-1", 0, 10)
	assert.Empty(t, list)
}
