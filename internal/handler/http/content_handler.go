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

type ContentHandler struct {
	contentUsecase usecasecontract.IContentUseCase
}

func NewContentHandler(contentUsecase usecasecontract.IContentUseCase) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase}
}

func (h *ContentHandler) ListFeed(c *gin.Context) {
	kind, ok := contentKindParam(c)
	if !ok {
		return
	}
	offset, limit := paginationQuery(c)
	items, err := h.contentUsecase.ListFeed(c.Request.Context(), kind, offset, limit)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToContentResponses(items))
}

func (h *ContentHandler) ListSaved(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	offset, limit := paginationQuery(c)
	items, err := h.contentUsecase.ListSaved(c.Request.Context(), viewer, offset, limit)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToContentResponses(items))
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	kind, ok := contentKindParam(c)
	if !ok {
		return
	}
	item, err := h.contentUsecase.GetByID(c.Request.Context(), kind, c.Param("contentID"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "content not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToContentResponse(item))
}

// CreateBlog publishes an article from a multipart form. The optional media
// file is forwarded to the third-party media endpoint before the record is
// written.
func (h *ContentHandler) CreateBlog(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	var req dto.CreateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	var (
		mediaName string
		mediaType string
	)
	fileHeader, err := c.FormFile("media")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			ErrorHandler(c, http.StatusBadRequest, "failed to read media file")
			return
		}
		defer file.Close()
		mediaName = fileHeader.Filename
		mediaType = fileHeader.Header.Get("Content-Type")

		item, ucErr := h.contentUsecase.CreateBlog(c.Request.Context(), viewer, req.Title, req.Body, req.Categories, mediaName, file, mediaType)
		if ucErr != nil {
			ErrorHandler(c, contentStatus(ucErr), ucErr.Error())
			return
		}
		SuccessHandler(c, http.StatusCreated, dto.ToContentResponse(item))
		return
	}

	item, ucErr := h.contentUsecase.CreateBlog(c.Request.Context(), viewer, req.Title, req.Body, req.Categories, "", nil, "")
	if ucErr != nil {
		ErrorHandler(c, contentStatus(ucErr), ucErr.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToContentResponse(item))
}

func (h *ContentHandler) DeleteContent(c *gin.Context) {
	kind, ok := contentKindParam(c)
	if !ok {
		return
	}
	viewer, vok := middleware.CurrentViewer(c)
	if !vok || !viewer.IsSignedIn() {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	if err := h.contentUsecase.Delete(c.Request.Context(), viewer, kind, c.Param("contentID")); err != nil {
		ErrorHandler(c, contentStatus(err), err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "content deleted")
}

func contentStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrInvalidMediaType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
