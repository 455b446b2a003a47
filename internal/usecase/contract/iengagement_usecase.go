package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// IEngagementUseCase is the optimistic mutation surface for a viewer
// session: like/save/follow toggles, comment submission, and read access to
// the locally synchronized engagement state.
type IEngagementUseCase interface {
	// Hydrate loads an item's engagement state into the session store and
	// establishes its real-time subscription. Release tears the
	// subscription down.
	Hydrate(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (entity.EngagementState, error)
	Release(viewerID, contentID string)

	// ToggleLike flips the viewer's like on the item. It returns the new
	// liked state after the optimistic flip.
	ToggleLike(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (bool, error)
	// ToggleSave flips the viewer's bookmark on a blog. Kinds without a
	// saved-by set are rejected.
	ToggleSave(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID string) (bool, error)
	// ToggleFollow flips the viewer's follow of another user.
	ToggleFollow(ctx context.Context, viewer entity.Viewer, targetUserID string) (bool, error)

	// SubmitComment writes a comment on the item, single-flight per item
	// per session.
	SubmitComment(ctx context.Context, viewer entity.Viewer, kind entity.ContentKind, contentID, text string, parentID, replyToUser *string) (*entity.Comment, error)

	// State returns the current locally synchronized state for an item.
	State(viewerID, contentID string) (entity.EngagementState, bool)
	// Comments returns the item's comment list as last replaced by the
	// real-time subscription, newest first.
	Comments(viewerID, contentID string) []*entity.Comment

	// CloseSession releases every subscription the viewer's session holds.
	CloseSession(viewerID string)
}
