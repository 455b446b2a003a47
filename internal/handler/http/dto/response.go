package dto

import (
	"time"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// UserResponse is the DTO for a user profile.
type UserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photo_url,omitempty"`
	Bio           string `json:"bio,omitempty"`
	FollowerCount int    `json:"follower_count"`
	FollowedCount int    `json:"followed_count"`
	CreatedAt     string `json:"created_at"`
}

// LoginResponse is the DTO for a successful sign-in.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Name:          user.Username,
		Email:         user.Email,
		PhotoURL:      user.PhotoURL,
		Bio:           user.Bio,
		FollowerCount: len(user.Followers),
		FollowedCount: len(user.Following),
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
