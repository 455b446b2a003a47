package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

func TestRealtimeSyncAppliesSnapshotOutsideCooldown(t *testing.T) {
	watcher := newFakeWatcher()
	rs := NewRealtimeSync(watcher, nopLogger{})
	store := NewEngagementStore()
	guard := NewInteractionGuard(0)
	store.Seed("v1", entity.EngagementState{LikeCount: 5})

	stop, err := rs.Start(context.Background(), entity.ContentKindVideo, "v1", "viewer-1", store, guard)
	assert.NoError(t, err)
	defer stop()

	watcher.contentCh <- entity.ContentSnapshot{
		AuthorID:  "owner-1",
		LikeCount: 9,
		LikedBy:   []string{"viewer-1"},
	}

	assert.Eventually(t, func() bool {
		st, _ := store.State("v1")
		return st.LikeCount == 9 && st.IsLiked
	}, time.Second, 5*time.Millisecond)
}

func TestRealtimeSyncSuppressesGuardedFieldsInsideCooldown(t *testing.T) {
	watcher := newFakeWatcher()
	rs := NewRealtimeSync(watcher, nopLogger{})
	store := NewEngagementStore()

	now := time.Unix(1000, 0)
	guard := guardAt(&now)
	store.Seed("v1", entity.EngagementState{LikeCount: 6, IsLiked: true})
	guard.Arm("v1")

	stop, err := rs.Start(context.Background(), entity.ContentKindVideo, "v1", "viewer-1", store, guard)
	assert.NoError(t, err)
	defer stop()

	// A stale echo of the pre-mutation document arrives inside the
	// window: the like fields must survive, the comment counter applies.
	watcher.contentCh <- entity.ContentSnapshot{
		AuthorID:     "owner-1",
		LikeCount:    5,
		CommentCount: 3,
		LikedBy:      []string{},
	}

	assert.Eventually(t, func() bool {
		st, _ := store.State("v1")
		return st.CommentCount == 3
	}, time.Second, 5*time.Millisecond)

	st, _ := store.State("v1")
	assert.Equal(t, 6, st.LikeCount)
	assert.True(t, st.IsLiked)

	// Past the window the next snapshot is authoritative again.
	now = now.Add(InteractionCooldown)
	watcher.contentCh <- entity.ContentSnapshot{
		AuthorID:  "owner-1",
		LikeCount: 6,
		LikedBy:   []string{"viewer-1"},
	}
	assert.Eventually(t, func() bool {
		st, _ := store.State("v1")
		return st.LikeCount == 6 && st.IsLiked
	}, time.Second, 5*time.Millisecond)
}

func TestRealtimeSyncReplacesCommentListUnconditionally(t *testing.T) {
	watcher := newFakeWatcher()
	rs := NewRealtimeSync(watcher, nopLogger{})
	store := NewEngagementStore()

	now := time.Unix(1000, 0)
	guard := guardAt(&now)
	guard.Arm("v1")

	stop, err := rs.Start(context.Background(), entity.ContentKindVideo, "v1", "viewer-1", store, guard)
	assert.NoError(t, err)
	defer stop()

	// Comment pushes bypass the guard entirely.
	watcher.commentCh <- []*entity.Comment{{ID: "m2"}, {ID: "m1"}}
	assert.Eventually(t, func() bool {
		return len(store.Comments("v1")) == 2
	}, time.Second, 5*time.Millisecond)

	watcher.commentCh <- []*entity.Comment{{ID: "m3"}, {ID: "m2"}, {ID: "m1"}}
	assert.Eventually(t, func() bool {
		return len(store.Comments("v1")) == 3
	}, time.Second, 5*time.Millisecond)
}

func TestRealtimeSyncStopEndsPump(t *testing.T) {
	watcher := newFakeWatcher()
	rs := NewRealtimeSync(watcher, nopLogger{})
	store := NewEngagementStore()
	guard := NewInteractionGuard(0)

	stop, err := rs.Start(context.Background(), entity.ContentKindVideo, "v1", "viewer-1", store, guard)
	assert.NoError(t, err)
	stop()
	time.Sleep(20 * time.Millisecond)

	// The pump is gone: a snapshot send finds no receiver and the store
	// stays untouched.
	select {
	case watcher.contentCh <- entity.ContentSnapshot{LikeCount: 42}:
		t.Fatal("pump still consuming after stop")
	case <-time.After(50 * time.Millisecond):
	}
	st, _ := store.State("v1")
	assert.NotEqual(t, 42, st.LikeCount)
}
