package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yonatanberih/pulse/internal/domain/entity"
	"github.com/yonatanberih/pulse/internal/handler/http/dto"
	"github.com/yonatanberih/pulse/internal/handler/http/middleware"
	"github.com/yonatanberih/pulse/internal/usecase"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// EngagementHandler exposes the optimistic mutation surface: per-item
// hydration, like/save/follow toggles, and comment submission. Responses
// return the locally flipped state immediately; the server-side store
// reconciles through the push subscription afterwards.
type EngagementHandler struct {
	engagementUsecase usecasecontract.IEngagementUseCase
}

func NewEngagementHandler(engagementUsecase usecasecontract.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{engagementUsecase: engagementUsecase}
}

func (h *EngagementHandler) Hydrate(c *gin.Context) {
	kind, ok := contentKindParam(c)
	if !ok {
		return
	}
	viewer, _ := middleware.CurrentViewer(c)
	contentID := c.Param("contentID")
	state, err := h.engagementUsecase.Hydrate(c.Request.Context(), viewer, kind, contentID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEngagementResponse(contentID, state))
}

func (h *EngagementHandler) Release(c *gin.Context) {
	viewer, _ := middleware.CurrentViewer(c)
	h.engagementUsecase.Release(viewer.SessionKey(), c.Param("contentID"))
	MessageHandler(c, http.StatusOK, "subscription released")
}

func (h *EngagementHandler) State(c *gin.Context) {
	viewer, _ := middleware.CurrentViewer(c)
	contentID := c.Param("contentID")
	state, ok := h.engagementUsecase.State(viewer.SessionKey(), contentID)
	if !ok {
		ErrorHandler(c, http.StatusNotFound, "item not hydrated")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEngagementResponse(contentID, state))
}

func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	kind, ok := contentKindParam(c)
	if !ok {
		return
	}
	viewer, _ := middleware.CurrentViewer(c)
	liked, err := h.engagementUsecase.ToggleLike(c.Request.Context(), viewer, kind, c.Param("contentID"))
	if err != nil {
		ErrorHandler(c, engagementStatus(err), err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToggleResponse{Active: liked})
}

func (h *EngagementHandler) ToggleSave(c *gin.Context) {
	viewer, _ := middleware.CurrentViewer(c)
	saved, err := h.engagementUsecase.ToggleSave(c.Request.Context(), viewer, entity.ContentKindBlog, c.Param("contentID"))
	if err != nil {
		ErrorHandler(c, engagementStatus(err), err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToggleResponse{Active: saved})
}

func (h *EngagementHandler) ToggleFollow(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	following, err := h.engagementUsecase.ToggleFollow(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		ErrorHandler(c, engagementStatus(err), err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToggleResponse{Active: following})
}

func (h *EngagementHandler) SubmitComment(c *gin.Context) {
	kind, ok := contentKindParam(c)
	if !ok {
		return
	}
	viewer, vok := middleware.CurrentViewer(c)
	if !vok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	comment, err := h.engagementUsecase.SubmitComment(c.Request.Context(), viewer, kind, c.Param("contentID"), req.Text, req.ParentID, req.ReplyToUser)
	if err != nil {
		ErrorHandler(c, engagementStatus(err), err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommentResponse(comment))
}

// ListComments serves the comment list as last replaced by the push
// subscription, newest first.
func (h *EngagementHandler) ListComments(c *gin.Context) {
	viewer, _ := middleware.CurrentViewer(c)
	comments := h.engagementUsecase.Comments(viewer.SessionKey(), c.Param("contentID"))
	SuccessHandler(c, http.StatusOK, dto.ToCommentResponses(comments))
}

func (h *EngagementHandler) CloseSession(c *gin.Context) {
	viewer, _ := middleware.CurrentViewer(c)
	h.engagementUsecase.CloseSession(viewer.SessionKey())
	MessageHandler(c, http.StatusOK, "session closed")
}

func engagementStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotSignedIn):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrSubmitInFlight):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrEmptyComment),
		errors.Is(err, usecase.ErrReplyToReply),
		errors.Is(err, usecase.ErrSelfFollow),
		errors.Is(err, usecase.ErrSaveUnsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
