package entity

import (
	"time"
)

// ContentKind distinguishes the two content variants of the platform.
type ContentKind string

const (
	ContentKindBlog  ContentKind = "blog"
	ContentKindVideo ContentKind = "video"
)

// Valid reports whether the kind names a known content collection.
func (k ContentKind) Valid() bool {
	return k == ContentKindBlog || k == ContentKindVideo
}

// Content is a published item: a long-form article or a short-form video.
// LikeCount is maintained as an independently mutated counter alongside the
// LikedBy membership set; the two may drift under partial failure and are
// reconciled only by the next authoritative snapshot.
type Content struct {
	ID           string      `bson:"_id,omitempty" json:"id"`
	Kind         ContentKind `bson:"kind" json:"kind"`
	AuthorID     string      `bson:"author_id" json:"author_id"`
	AuthorName   string      `bson:"author_name,omitempty" json:"author_name,omitempty"`
	AuthorPhoto  string      `bson:"author_photo,omitempty" json:"author_photo,omitempty"`
	Title        string      `bson:"title,omitempty" json:"title,omitempty"`
	Body         string      `bson:"body,omitempty" json:"body,omitempty"`
	Caption      string      `bson:"caption,omitempty" json:"caption,omitempty"`
	MediaURL     string      `bson:"media_url,omitempty" json:"media_url,omitempty"`
	Categories   []string    `bson:"categories,omitempty" json:"categories,omitempty"`
	LikeCount    int         `bson:"like_count" json:"like_count"`
	CommentCount int         `bson:"comment_count" json:"comment_count"`
	ShareCount   int         `bson:"share_count" json:"share_count"`
	LikedBy      []string    `bson:"liked_by" json:"liked_by"`
	SavedBy      []string    `bson:"saved_by,omitempty" json:"saved_by,omitempty"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updated_at"`
}

// LikedByUser reports membership of userID in the liked-by set.
func (c *Content) LikedByUser(userID string) bool {
	for _, id := range c.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// SavedByUser reports membership of userID in the saved-by set.
func (c *Content) SavedByUser(userID string) bool {
	for _, id := range c.SavedBy {
		if id == userID {
			return true
		}
	}
	return false
}
