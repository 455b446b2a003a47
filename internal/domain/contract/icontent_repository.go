package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// Pagination carries simple offset slicing parameters for list queries.
type Pagination struct {
	Offset int
	Limit  int
}

// IContentRepository is the persistence boundary for blogs and videos.
//
// Like/Unlike and Save/Unsave pair an atomic set-membership operator with an
// atomic counter operator. The underlying store only guarantees per-document
// atomicity, so each implementation must issue the pair as a single document
// update; partial application (set updated, counter not) is a recognized
// failure mode the caller does not retry.
type IContentRepository interface {
	Create(ctx context.Context, content *entity.Content) error
	GetByID(ctx context.Context, kind entity.ContentKind, id string) (*entity.Content, error)
	List(ctx context.Context, kind entity.ContentKind, p Pagination) ([]*entity.Content, error)
	ListSavedBy(ctx context.Context, userID string, p Pagination) ([]*entity.Content, error)
	Delete(ctx context.Context, kind entity.ContentKind, id, ownerID string) error

	Like(ctx context.Context, kind entity.ContentKind, id, userID string) error
	Unlike(ctx context.Context, kind entity.ContentKind, id, userID string) error
	Save(ctx context.Context, kind entity.ContentKind, id, userID string) error
	Unsave(ctx context.Context, kind entity.ContentKind, id, userID string) error
	IncrementComments(ctx context.Context, kind entity.ContentKind, id string, delta int) error
}
