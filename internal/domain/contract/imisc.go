package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// IUUIDGenerator generates unique identifiers for new records.
type IUUIDGenerator interface {
	NewUUID() string
}

// IHasher hashes and verifies passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashed, password string) error
}

// INotificationPublisher pushes a freshly written notification to the live
// delivery channel. Publishing is fire-and-forget relative to the triggering
// mutation; failures are logged and swallowed by the caller.
type INotificationPublisher interface {
	Publish(ctx context.Context, n *entity.Notification) error
}
