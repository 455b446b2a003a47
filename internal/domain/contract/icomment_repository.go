package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// ICommentRepository is the persistence boundary for comments. Comments are
// append-only: there is no update and no cascade delete from the parent.
type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	// ListByContent returns every comment on an item, newest first.
	ListByContent(ctx context.Context, kind entity.ContentKind, contentID string) ([]*entity.Comment, error)
	CountByContent(ctx context.Context, kind entity.ContentKind, contentID string) (int64, error)
}
