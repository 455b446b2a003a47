package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yonatanberih/pulse/internal/domain/entity"
	"github.com/yonatanberih/pulse/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// contentKindParam parses the :kind path segment.
func contentKindParam(c *gin.Context) (entity.ContentKind, bool) {
	kind := entity.ContentKind(c.Param("kind"))
	if !kind.Valid() {
		ErrorHandler(c, http.StatusBadRequest, "unknown content kind")
		return "", false
	}
	return kind, true
}

// paginationQuery reads the offset/limit query parameters, defaulting to the
// first page.
func paginationQuery(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
