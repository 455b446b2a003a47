package entity

import (
	"time"
)

// Comment is a viewer comment on a content item. Comments are immutable once
// written. Threading is one level deep: a comment may reference a top-level
// parent, but replies may not themselves be replied to. Deleting the parent
// content does not cascade to its comments (known gap).
type Comment struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	ContentID   string      `bson:"content_id" json:"content_id"`
	ContentKind ContentKind `bson:"content_kind" json:"content_kind"`
	ParentID    *string     `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	AuthorID    string      `bson:"author_id" json:"author_id"`
	AuthorName  string      `bson:"author_name" json:"author_name"`
	AuthorPhoto string      `bson:"author_photo,omitempty" json:"author_photo,omitempty"`
	Text        string      `bson:"text" json:"text"`
	ReplyToUser *string     `bson:"reply_to_user,omitempty" json:"reply_to_user,omitempty"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
}

// IsReply reports whether the comment is a one-deep reply.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil && *c.ParentID != ""
}
