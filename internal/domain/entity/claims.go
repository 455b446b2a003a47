package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the parsed contents of a session token.
type Claims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	PhotoURL string   `json:"photo_url,omitempty"`
	jwt.RegisteredClaims
}

// Viewer builds the request-scoped viewer identity from the session claims.
func (c *Claims) Viewer() Viewer {
	return Viewer{
		ID:       c.UserID,
		Name:     c.Name,
		Email:    c.Email,
		PhotoURL: c.PhotoURL,
	}
}
