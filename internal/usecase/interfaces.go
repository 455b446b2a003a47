package usecase

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// JWTService defines the interface for session token operations.
type JWTService interface {
	GenerateAccessToken(user *entity.User) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
	ParseRefreshToken(token string) (*entity.Claims, error)
}

// OAuthProvider is the federated identity exchange: it turns an
// authorization code into the provider's profile for the signed-in account.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*OAuthProfile, error)
}

// OAuthProfile is the profile returned by a federated provider.
type OAuthProfile struct {
	Subject  string
	Email    string
	Name     string
	PhotoURL string
}
