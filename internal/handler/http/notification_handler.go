package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yonatanberih/pulse/internal/handler/http/dto"
	"github.com/yonatanberih/pulse/internal/handler/http/middleware"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

type NotificationHandler struct {
	notificationUsecase usecasecontract.INotificationUseCase
}

func NewNotificationHandler(notificationUsecase usecasecontract.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

func (h *NotificationHandler) List(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	offset, limit := paginationQuery(c)
	items, err := h.notificationUsecase.List(c.Request.Context(), viewer.ID, offset, limit)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToNotificationResponses(items))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	if err := h.notificationUsecase.MarkRead(c.Request.Context(), viewer.ID, c.Param("notificationID")); err != nil {
		ErrorHandler(c, http.StatusNotFound, "notification not found")
		return
	}
	MessageHandler(c, http.StatusOK, "notification marked read")
}

// ClearAll deletes every notification addressed to the viewer in one call.
func (h *NotificationHandler) ClearAll(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	deleted, err := h.notificationUsecase.ClearAll(c.Request.Context(), viewer.ID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ClearNotificationsResponse{Deleted: deleted})
}
