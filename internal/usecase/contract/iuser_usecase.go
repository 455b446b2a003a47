package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// ProfileUpdate is a partial profile edit. Nil fields are left untouched;
// a non-nil empty PhotoURL removes the photo.
type ProfileUpdate struct {
	Username *string
	Bio      *string
	PhotoURL *string
}

// IUserUseCase is the identity surface: credential and federated sign-in,
// session refresh, and profile reads and edits.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	GoogleLoginURL(state string) string
	LoginWithGoogle(ctx context.Context, code string) (*entity.User, string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entity.User, error)
	ListFollowers(ctx context.Context, userID string) ([]*entity.User, error)
	ListFollowing(ctx context.Context, userID string) ([]*entity.User, error)
}
