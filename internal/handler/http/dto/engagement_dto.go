package dto

import (
	"time"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// EngagementResponse returns the locally synchronized state of one item.
type EngagementResponse struct {
	ContentID    string `json:"content_id"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	ShareCount   int    `json:"share_count"`
	IsLiked      bool   `json:"is_liked"`
	IsSaved      bool   `json:"is_saved"`
	OwnerID      string `json:"owner_id,omitempty"`
}

// ToEngagementResponse converts an EngagementState to its DTO.
func ToEngagementResponse(contentID string, s entity.EngagementState) EngagementResponse {
	return EngagementResponse{
		ContentID:    contentID,
		LikeCount:    s.LikeCount,
		CommentCount: s.CommentCount,
		ShareCount:   s.ShareCount,
		IsLiked:      s.IsLiked,
		IsSaved:      s.IsSaved,
		OwnerID:      s.OwnerID,
	}
}

// ToggleResponse reports the new membership state after an optimistic flip.
type ToggleResponse struct {
	Active bool `json:"active"`
}

// CreateCommentRequest is the payload for comment submission.
type CreateCommentRequest struct {
	Text        string  `json:"text" binding:"required"`
	ParentID    *string `json:"parent_id,omitempty"`
	ReplyToUser *string `json:"reply_to_user,omitempty"`
}

// CommentResponse is the DTO for one comment.
type CommentResponse struct {
	ID          string  `json:"id"`
	ContentID   string  `json:"content_id"`
	ParentID    *string `json:"parent_id,omitempty"`
	AuthorID    string  `json:"author_id"`
	AuthorName  string  `json:"author_name"`
	AuthorPhoto string  `json:"author_photo,omitempty"`
	Text        string  `json:"text"`
	ReplyToUser *string `json:"reply_to_user,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToCommentResponse converts an entity.Comment to its DTO.
func ToCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		ContentID:   c.ContentID,
		ParentID:    c.ParentID,
		AuthorID:    c.AuthorID,
		AuthorName:  c.AuthorName,
		AuthorPhoto: c.AuthorPhoto,
		Text:        c.Text,
		ReplyToUser: c.ReplyToUser,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

// ToCommentResponses converts a comment list, preserving order.
func ToCommentResponses(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}
