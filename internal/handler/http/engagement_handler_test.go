package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yonatanberih/pulse/internal/domain/entity"
	handler "github.com/yonatanberih/pulse/internal/handler/http"
	"github.com/yonatanberih/pulse/internal/handler/http/dto"
	"github.com/yonatanberih/pulse/internal/handler/http/middleware"
	"github.com/yonatanberih/pulse/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func withViewer(viewer entity.Viewer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ViewerKey, viewer)
		c.Next()
	}
}

func setupEngagementRouter(h *handler.EngagementHandler, viewer entity.Viewer) *gin.Engine {
	r := gin.Default()
	r.Use(withViewer(viewer))
	r.POST("/content/:kind/:contentID/hydrate", h.Hydrate)
	r.POST("/content/:kind/:contentID/like", h.ToggleLike)
	r.POST("/blogs/:contentID/save", h.ToggleSave)
	r.POST("/users/:id/follow", h.ToggleFollow)
	r.POST("/content/:kind/:contentID/comment", h.SubmitComment)
	r.GET("/content/:kind/:contentID/comments", h.ListComments)
	return r
}

func signedInTestViewer() entity.Viewer {
	return entity.Viewer{ID: "mock-user-id", Name: "testuser", Email: "test@example.com"}
}

func TestHydrateReturnsState(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h, signedInTestViewer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/content/video/v1/hydrate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.EngagementResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v1", resp.ContentID)
	assert.Equal(t, 5, resp.LikeCount)
	assert.Equal(t, "mock-owner-id", resp.OwnerID)
}

func TestHydrateUnknownKind(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h, signedInTestViewer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/content/podcast/v1/hydrate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown content kind")
}

func TestToggleLikeReturnsNewState(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h, signedInTestViewer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/content/video/v1/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ToggleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
}

func TestToggleLike_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.ShouldFailToggleLike = true
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h, signedInTestViewer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/content/video/v1/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestToggleFollowRequiresSignIn(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h, entity.Viewer{Device: "device-9"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/other-1/follow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitComment(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h, signedInTestViewer())

	payload := dto.CreateCommentRequest{Text: "great clip"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/content/video/v1/comment", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "great clip")
}

func TestSubmitCommentMissingText(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h, signedInTestViewer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/content/video/v1/comment", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListComments(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase)
	r := setupEngagementRouter(h, signedInTestViewer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content/video/v1/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.CommentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "mock-comment-id", resp[0].ID)
}
