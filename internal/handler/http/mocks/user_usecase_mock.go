package mocks

import (
	"context"
	"errors"

	"github.com/yonatanberih/pulse/internal/domain/entity"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailLogin        bool
	ShouldFailGoogleLogin  bool
	ShouldFailRefreshToken bool
	ShouldFailGetByID      bool
	ShouldFailListEdges    bool
	ShouldFailUpdate       bool

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string

	// Recorded calls
	UpdatedProfiles []usecasecontract.ProfileUpdate
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, errors.New("user creation failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", errors.New("login failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	if m.ShouldFailUpdate {
		return nil, errors.New("profile update failed")
	}
	m.UpdatedProfiles = append(m.UpdatedProfiles, update)
	if update.Username != nil {
		m.MockUser.Username = *update.Username
	}
	if update.Bio != nil {
		m.MockUser.Bio = *update.Bio
	}
	if update.PhotoURL != nil {
		m.MockUser.PhotoURL = *update.PhotoURL
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GoogleLoginURL(state string) string {
	return "https://accounts.example.com/consent?state=" + state
}

func (m *MockUserUsecase) LoginWithGoogle(ctx context.Context, code string) (*entity.User, string, string, error) {
	if m.ShouldFailGoogleLogin {
		return nil, "", "", errors.New("oauth exchange failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", errors.New("refresh token failed")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) ListFollowers(ctx context.Context, userID string) ([]*entity.User, error) {
	if m.ShouldFailListEdges {
		return nil, errors.New("user not found")
	}
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) ListFollowing(ctx context.Context, userID string) ([]*entity.User, error) {
	if m.ShouldFailListEdges {
		return nil, errors.New("user not found")
	}
	return []*entity.User{&m.MockUser}, nil
}
