package dto

import (
	"time"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// ContentResponse is the DTO for a published blog or video.
type ContentResponse struct {
	ID           string   `json:"id"`
	Kind         string   `json:"kind"`
	AuthorID     string   `json:"author_id"`
	AuthorName   string   `json:"author_name,omitempty"`
	AuthorPhoto  string   `json:"author_photo,omitempty"`
	Title        string   `json:"title,omitempty"`
	Body         string   `json:"body,omitempty"`
	Caption      string   `json:"caption,omitempty"`
	MediaURL     string   `json:"media_url,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	LikeCount    int      `json:"like_count"`
	CommentCount int      `json:"comment_count"`
	ShareCount   int      `json:"share_count"`
	CreatedAt    string   `json:"created_at"`
}

// ToContentResponse converts an entity.Content to its DTO. Membership sets
// stay server-side; clients read their own flags from the engagement state.
func ToContentResponse(c *entity.Content) ContentResponse {
	return ContentResponse{
		ID:           c.ID,
		Kind:         string(c.Kind),
		AuthorID:     c.AuthorID,
		AuthorName:   c.AuthorName,
		AuthorPhoto:  c.AuthorPhoto,
		Title:        c.Title,
		Body:         c.Body,
		Caption:      c.Caption,
		MediaURL:     c.MediaURL,
		Categories:   c.Categories,
		LikeCount:    c.LikeCount,
		CommentCount: c.CommentCount,
		ShareCount:   c.ShareCount,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}

// ToContentResponses converts a content list, preserving order.
func ToContentResponses(items []*entity.Content) []ContentResponse {
	out := make([]ContentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, ToContentResponse(c))
	}
	return out
}

// CreateBlogRequest is the multipart-adjacent payload for article creation;
// media arrives as a separate form file.
type CreateBlogRequest struct {
	Title      string   `form:"title" binding:"required"`
	Body       string   `form:"body"`
	Categories []string `form:"categories"`
}
