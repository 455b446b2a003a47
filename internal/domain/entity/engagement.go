package entity

import (
	"time"
)

// EngagementState is the per-item view state held for the current viewer:
// the socially mutated counters plus the viewer's own membership flags.
type EngagementState struct {
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	ShareCount   int    `json:"share_count"`
	IsLiked      bool   `json:"is_liked"`
	IsSaved      bool   `json:"is_saved"`
	OwnerID      string `json:"owner_id"`
}

// ContentSnapshot is a typed push update for a single content document,
// decoded at the ingestion boundary. Unknown fields are dropped during
// decoding; missing optional fields default to their zero values.
type ContentSnapshot struct {
	ID           string      `bson:"_id" json:"id"`
	Kind         ContentKind `bson:"kind" json:"kind"`
	AuthorID     string      `bson:"author_id" json:"author_id"`
	Title        string      `bson:"title,omitempty" json:"title,omitempty"`
	Caption      string      `bson:"caption,omitempty" json:"caption,omitempty"`
	MediaURL     string      `bson:"media_url,omitempty" json:"media_url,omitempty"`
	LikeCount    int         `bson:"like_count" json:"like_count"`
	CommentCount int         `bson:"comment_count" json:"comment_count"`
	ShareCount   int         `bson:"share_count" json:"share_count"`
	LikedBy      []string    `bson:"liked_by" json:"liked_by"`
	SavedBy      []string    `bson:"saved_by,omitempty" json:"saved_by,omitempty"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updated_at"`
}

// CounterField names an independently mutated engagement counter.
type CounterField string

const (
	CounterLikes    CounterField = "like_count"
	CounterComments CounterField = "comment_count"
	CounterShares   CounterField = "share_count"
)

// MembershipField names a viewer membership set on a content item.
type MembershipField string

const (
	MembershipLiked MembershipField = "liked_by"
	MembershipSaved MembershipField = "saved_by"
)
