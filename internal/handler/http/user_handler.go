package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yonatanberih/pulse/internal/handler/http/dto"
	"github.com/yonatanberih/pulse/internal/handler/http/middleware"
	"github.com/yonatanberih/pulse/internal/usecase"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			ErrorHandler(c, http.StatusConflict, err.Error())
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, access, refresh, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			ErrorHandler(c, http.StatusUnauthorized, err.Error())
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// GoogleLogin redirects the caller to the provider's consent page.
func (h *UserHandler) GoogleLogin(c *gin.Context) {
	state := c.Query("state")
	c.Redirect(http.StatusTemporaryRedirect, h.userUsecase.GoogleLoginURL(state))
}

// GoogleCallback completes the federated sign-in: the authorization code is
// exchanged for the provider profile and a local account is created on first
// sign-in.
func (h *UserHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		ErrorHandler(c, http.StatusBadRequest, "authorization code not provided")
		return
	}
	user, access, refresh, err := h.userUsecase.LoginWithGoogle(c.Request.Context(), code)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	access, refresh, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "user not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), viewer.ID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "user not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile applies a partial edit to the signed-in viewer's profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), viewer.ID, usecasecontract.ProfileUpdate{
		Username: req.Name,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyUsername) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) ListFollowers(c *gin.Context) {
	users, err := h.userUsecase.ListFollowers(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "user not found")
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(*u))
	}
	SuccessHandler(c, http.StatusOK, out)
}

func (h *UserHandler) ListFollowing(c *gin.Context) {
	users, err := h.userUsecase.ListFollowing(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "user not found")
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(*u))
	}
	SuccessHandler(c, http.StatusOK, out)
}
