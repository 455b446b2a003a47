package contract

import (
	"context"
)

// IEngagementCache mirrors the viewer's liked and saved content-item id sets
// to device-scoped persistence. The mirror is read once at session start and
// written on every successful toggle; it is the fallback source of membership
// state when the server sets are unavailable.
type IEngagementCache interface {
	AddLiked(ctx context.Context, viewerID, contentID string) error
	RemoveLiked(ctx context.Context, viewerID, contentID string) error
	ListLiked(ctx context.Context, viewerID string) ([]string, error)

	AddSaved(ctx context.Context, viewerID, contentID string) error
	RemoveSaved(ctx context.Context, viewerID, contentID string) error
	ListSaved(ctx context.Context, viewerID string) ([]string, error)
}
