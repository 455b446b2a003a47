package entity

import (
	"time"
)

// NotificationKind enumerates the mutations that fan out a notification.
type NotificationKind string

const (
	NotificationKindLike    NotificationKind = "like"
	NotificationKindComment NotificationKind = "comment"
)

// Notification is a record addressed to a content owner when another viewer
// likes or comments on their content. The actor profile is denormalized at
// write time. Repeated toggling produces repeated records; there is no dedup
// and unliking does not delete earlier notifications.
type Notification struct {
	ID          string           `bson:"_id,omitempty" json:"id"`
	RecipientID string           `bson:"recipient_id" json:"recipient_id"`
	ActorID     string           `bson:"actor_id" json:"actor_id"`
	ActorName   string           `bson:"actor_name" json:"actor_name"`
	ActorPhoto  string           `bson:"actor_photo,omitempty" json:"actor_photo,omitempty"`
	Kind        NotificationKind `bson:"kind" json:"kind"`
	TargetID    string           `bson:"target_id" json:"target_id"`
	TargetKind  ContentKind      `bson:"target_kind" json:"target_kind"`
	Content     string           `bson:"content,omitempty" json:"content,omitempty"`
	IsRead      bool             `bson:"is_read" json:"is_read"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
}
