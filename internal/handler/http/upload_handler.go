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

// UploadHandler drives the video publishing state machine over HTTP. Run is
// a blocking transfer: the request streams the binary and returns once the
// attempt reaches a terminal state. Cancel aborts a transfer started by a
// concurrent Run request.
type UploadHandler struct {
	uploadUsecase usecasecontract.IUploadUseCase
}

func NewUploadHandler(uploadUsecase usecasecontract.IUploadUseCase) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase}
}

func (h *UploadHandler) Begin(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	id, err := h.uploadUsecase.Begin(viewer)
	if err != nil {
		ErrorHandler(c, uploadStatusCode(err), err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.BeginUploadResponse{UploadID: id})
}

func (h *UploadHandler) Select(c *gin.Context) {
	var req dto.SelectUploadRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	err := h.uploadUsecase.Select(c.Param("uploadID"), req.Filename, req.ContentType, req.Size)
	if err != nil {
		ErrorHandler(c, uploadStatusCode(err), err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "file accepted")
}

// Run streams the selected file and commits the metadata record. A
// cancelled transfer is not an error: the response reports the cancelled
// state instead.
func (h *UploadHandler) Run(c *gin.Context) {
	uploadID := c.Param("uploadID")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "failed to read file")
		return
	}
	defer file.Close()

	meta := usecasecontract.UploadMeta{
		Kind:    entity.ContentKindVideo,
		Title:   c.PostForm("title"),
		Caption: c.PostForm("caption"),
	}
	item, err := h.uploadUsecase.Run(c.Request.Context(), uploadID, file, meta)
	if err != nil {
		if errors.Is(err, usecase.ErrUploadCancelled) {
			status, _ := h.uploadUsecase.Status(uploadID)
			SuccessHandler(c, http.StatusOK, status)
			return
		}
		ErrorHandler(c, uploadStatusCode(err), err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToContentResponse(item))
}

func (h *UploadHandler) Cancel(c *gin.Context) {
	if err := h.uploadUsecase.Cancel(c.Param("uploadID")); err != nil {
		ErrorHandler(c, uploadStatusCode(err), err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "upload cancelled")
}

func (h *UploadHandler) Status(c *gin.Context) {
	status, ok := h.uploadUsecase.Status(c.Param("uploadID"))
	if !ok {
		ErrorHandler(c, http.StatusNotFound, "upload not found")
		return
	}
	SuccessHandler(c, http.StatusOK, status)
}

func uploadStatusCode(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotSignedIn):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrUploadNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidFileType),
		errors.Is(err, usecase.ErrUploadState):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
