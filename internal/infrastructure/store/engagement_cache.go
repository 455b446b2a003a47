package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/yonatanberih/pulse/internal/domain/contract"
)

// EngagementCache mirrors a viewer's liked and saved id sets into Redis.
// For unauthenticated viewers the key is the device id, which makes the
// mirror the only membership state that survives across visits.
type EngagementCache struct {
	client *redis.Client
}

// NewEngagementCache creates and returns a new EngagementCache instance.
func NewEngagementCache(client *redis.Client) *EngagementCache {
	return &EngagementCache{client: client}
}

var _ contract.IEngagementCache = (*EngagementCache)(nil)

func likedKey(viewerID string) string { return "engage:liked:" + viewerID }
func savedKey(viewerID string) string { return "engage:saved:" + viewerID }

// AddLiked records contentID in the viewer's liked mirror.
func (c *EngagementCache) AddLiked(ctx context.Context, viewerID, contentID string) error {
	if err := c.client.SAdd(ctx, likedKey(viewerID), contentID).Err(); err != nil {
		return fmt.Errorf("failed to mirror liked id: %w", err)
	}
	return nil
}

// RemoveLiked drops contentID from the viewer's liked mirror.
func (c *EngagementCache) RemoveLiked(ctx context.Context, viewerID, contentID string) error {
	if err := c.client.SRem(ctx, likedKey(viewerID), contentID).Err(); err != nil {
		return fmt.Errorf("failed to unmirror liked id: %w", err)
	}
	return nil
}

// ListLiked returns every content id in the viewer's liked mirror.
func (c *EngagementCache) ListLiked(ctx context.Context, viewerID string) ([]string, error) {
	ids, err := c.client.SMembers(ctx, likedKey(viewerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read liked mirror: %w", err)
	}
	return ids, nil
}

// AddSaved records contentID in the viewer's saved mirror.
func (c *EngagementCache) AddSaved(ctx context.Context, viewerID, contentID string) error {
	if err := c.client.SAdd(ctx, savedKey(viewerID), contentID).Err(); err != nil {
		return fmt.Errorf("failed to mirror saved id: %w", err)
	}
	return nil
}

// RemoveSaved drops contentID from the viewer's saved mirror.
func (c *EngagementCache) RemoveSaved(ctx context.Context, viewerID, contentID string) error {
	if err := c.client.SRem(ctx, savedKey(viewerID), contentID).Err(); err != nil {
		return fmt.Errorf("failed to unmirror saved id: %w", err)
	}
	return nil
}

// ListSaved returns every content id in the viewer's saved mirror.
func (c *EngagementCache) ListSaved(ctx context.Context, viewerID string) ([]string, error) {
	ids, err := c.client.SMembers(ctx, savedKey(viewerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read saved mirror: %w", err)
	}
	return ids, nil
}
