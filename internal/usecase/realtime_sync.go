package usecase

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	"github.com/yonatanberih/pulse/internal/infrastructure/metrics"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// RealtimeSync consumes push updates for one content item and merges them
// into a session's engagement store, subject to interaction-guard
// suppression.
//
// Item snapshots: while the guard is armed for the item, the snapshot's
// counter and membership fields are discarded (presumed stale relative to
// the optimistic local value) but other fields still apply. Outside the
// window the snapshot's authoritative values overwrite the store — last
// write wins by arrival order, with no server-timestamp comparison.
//
// Comment snapshots are never suppressed: every push fully replaces the
// local list, newest first.
type RealtimeSync struct {
	watcher contract.IContentWatcher
	logger  usecasecontract.IAppLogger
}

// NewRealtimeSync creates and returns a new RealtimeSync instance.
func NewRealtimeSync(watcher contract.IContentWatcher, logger usecasecontract.IAppLogger) *RealtimeSync {
	return &RealtimeSync{watcher: watcher, logger: logger}
}

// Start establishes the item's document and comment subscriptions and pumps
// them into the store until the returned stop function is called. The
// subscriptions are torn down on all exit paths, including watcher errors.
func (rs *RealtimeSync) Start(ctx context.Context, kind entity.ContentKind, contentID, viewerID string, store *EngagementStore, guard *InteractionGuard) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	contentCh, err := rs.watcher.WatchContent(ctx, kind, contentID)
	if err != nil {
		cancel()
		return nil, err
	}
	commentCh, err := rs.watcher.WatchComments(ctx, kind, contentID)
	if err != nil {
		cancel()
		return nil, err
	}

	go rs.pump(ctx, contentID, viewerID, store, guard, contentCh, commentCh)
	return cancel, nil
}

func (rs *RealtimeSync) pump(ctx context.Context, contentID, viewerID string, store *EngagementStore, guard *InteractionGuard, contentCh <-chan entity.ContentSnapshot, commentCh <-chan []*entity.Comment) {
	for contentCh != nil || commentCh != nil {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-contentCh:
			if !ok {
				contentCh = nil
				continue
			}
			suppressed := guard.IsSuppressed(contentID)
			if suppressed {
				metrics.SuppressedSnapshotsTotal.Inc()
				rs.logger.Debugf("snapshot for %s inside cooldown, guarded fields discarded", contentID)
			}
			store.ApplySnapshot(contentID, snap, viewerID, suppressed)
		case list, ok := <-commentCh:
			if !ok {
				commentCh = nil
				continue
			}
			store.ReplaceComments(contentID, list)
		}
	}
}
