package contract

import (
	"context"

	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// IUserRepository is the persistence boundary for user records and the
// bidirectional follow graph.
//
// Follow and Unfollow issue two paired single-document mutations (the
// follower's following set, then the followee's followers set). The pair is
// not transactional: if the second write fails the implementation compensates
// by reverting the first, best effort.
type IUserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error

	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	ListFollowers(ctx context.Context, userID string) ([]*entity.User, error)
	ListFollowing(ctx context.Context, userID string) ([]*entity.User, error)
}
