package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an email that exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrEmptyUsername rejects a profile update that would blank the name.
	ErrEmptyUsername = errors.New("username cannot be empty")
)

// UserUsecase handles identity: credential and federated sign-in, session
// refresh, and profile reads. Session identity supplies the uid, email,
// display name, and photo URL used throughout the engagement layer.
type UserUsecase struct {
	userRepo  contract.IUserRepository
	hasher    contract.IHasher
	jwt       JWTService
	oauth     OAuthProvider
	validator usecasecontract.IValidator
	uuidGen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
}

// NewUserUsecase creates and returns a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwt JWTService,
	oauth OAuthProvider,
	validator usecasecontract.IValidator,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		jwt:       jwt,
		oauth:     oauth,
		validator: validator,
		uuidGen:   uuidGen,
		logger:    logger,
	}
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register creates a new account with email/password credentials.
func (u *UserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if err := u.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := u.validator.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}
	if existing, _ := u.userRepo.GetUserByEmail(ctx, email); existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := u.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		ID:           u.uuidGen.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.DefaultRole(),
		IsActive:     true,
		Followers:    []string{},
		Following:    []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a token pair.
func (u *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if err := u.hasher.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	access, refresh, err := u.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// UpdateProfile applies the viewer's partial profile edit. Nil fields are
// left untouched; a non-nil empty PhotoURL removes the photo. Returns the
// record as it stands after the update.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID string, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	fields := map[string]interface{}{}
	if update.Username != nil {
		name := strings.TrimSpace(*update.Username)
		if name == "" {
			return nil, ErrEmptyUsername
		}
		fields["username"] = name
	}
	if update.Bio != nil {
		fields["bio"] = strings.TrimSpace(*update.Bio)
	}
	if update.PhotoURL != nil {
		fields["photo_url"] = *update.PhotoURL
	}
	if len(fields) > 0 {
		if err := u.userRepo.UpdateProfile(ctx, userID, fields); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// GoogleLoginURL returns the provider consent page URL for the given state.
func (u *UserUsecase) GoogleLoginURL(state string) string {
	return u.oauth.AuthCodeURL(state)
}

// LoginWithGoogle exchanges a federated authorization code, upserting the
// account on first sign-in.
func (u *UserUsecase) LoginWithGoogle(ctx context.Context, code string) (*entity.User, string, string, error) {
	profile, err := u.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, "", "", fmt.Errorf("google sign-in failed: %w", err)
	}
	user, err := u.userRepo.GetUserByEmail(ctx, profile.Email)
	if err != nil {
		user = &entity.User{
			ID:        u.uuidGen.NewUUID(),
			Username:  profile.Name,
			Email:     profile.Email,
			PhotoURL:  profile.PhotoURL,
			Role:      entity.DefaultRole(),
			IsActive:  true,
			Followers: []string{},
			Following: []string{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, "", "", fmt.Errorf("failed to create user: %w", err)
		}
	}
	access, refresh, err := u.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// RefreshToken rotates the session token pair.
func (u *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %w", err)
	}
	user, err := u.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load user: %w", err)
	}
	return u.issueTokens(user)
}

// GetUserByID returns one user profile.
func (u *UserUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}

// ListFollowers returns the users following userID.
func (u *UserUsecase) ListFollowers(ctx context.Context, userID string) ([]*entity.User, error) {
	return u.userRepo.ListFollowers(ctx, userID)
}

// ListFollowing returns the users userID follows.
func (u *UserUsecase) ListFollowing(ctx context.Context, userID string) ([]*entity.User, error) {
	return u.userRepo.ListFollowing(ctx, userID)
}

func (u *UserUsecase) issueTokens(user *entity.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(user)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := u.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return access, refresh, nil
}
