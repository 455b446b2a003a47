package dto

import (
	"time"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// NotificationResponse is the DTO for one notification record.
type NotificationResponse struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	ActorID    string `json:"actor_id"`
	ActorName  string `json:"actor_name"`
	ActorPhoto string `json:"actor_photo,omitempty"`
	TargetID   string `json:"target_id"`
	TargetKind string `json:"target_kind"`
	Content    string `json:"content,omitempty"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

// ToNotificationResponse converts an entity.Notification to its DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Kind:       string(n.Kind),
		ActorID:    n.ActorID,
		ActorName:  n.ActorName,
		ActorPhoto: n.ActorPhoto,
		TargetID:   n.TargetID,
		TargetKind: string(n.TargetKind),
		Content:    n.Content,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
}

// ToNotificationResponses converts a notification list, preserving order.
func ToNotificationResponses(items []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}

// ClearNotificationsResponse reports the bulk clear outcome.
type ClearNotificationsResponse struct {
	Deleted int64 `json:"deleted"`
}
