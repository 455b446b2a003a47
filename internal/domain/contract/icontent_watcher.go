package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// IContentWatcher delivers push updates from the remote store as discrete
// snapshot events. Each subscription is scoped to the passed context: the
// channel is closed when the context is cancelled or the underlying stream
// ends, on all exit paths.
type IContentWatcher interface {
	// WatchContent streams full-document snapshots of one content item on
	// every remote change.
	WatchContent(ctx context.Context, kind entity.ContentKind, id string) (<-chan entity.ContentSnapshot, error)
	// WatchComments streams the full comment list of one content item,
	// newest first, on every change to its comment collection.
	WatchComments(ctx context.Context, kind entity.ContentKind, id string) (<-chan []*entity.Comment, error)
}
