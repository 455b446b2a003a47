package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yonatanberih/pulse/internal/domain/entity"
	"github.com/yonatanberih/pulse/internal/usecase"
)

const (
	// ViewerKey is the gin context key under which the request viewer is
	// stored.
	ViewerKey = "viewer"
	// DeviceHeader carries the client device id used to key engagement
	// state for unauthenticated viewers.
	DeviceHeader = "X-Device-ID"
)

// AuthMiddleWare rejects requests without a valid Bearer access token and
// stores the authenticated viewer in the context.
func AuthMiddleWare(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, jwtService)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing access token"})
			return
		}
		viewer := claims.Viewer()
		viewer.Device = c.GetHeader(DeviceHeader)
		c.Set(ViewerKey, viewer)
		c.Next()
	}
}

// OptionalAuthMiddleWare resolves the viewer when a token is present but
// lets unauthenticated requests through with a device-only viewer. The
// engagement surface serves signed-out visitors from their device mirror.
func OptionalAuthMiddleWare(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := entity.Viewer{Device: c.GetHeader(DeviceHeader)}
		if claims, ok := parseBearer(c, jwtService); ok {
			device := viewer.Device
			viewer = claims.Viewer()
			viewer.Device = device
		}
		c.Set(ViewerKey, viewer)
		c.Next()
	}
}

func parseBearer(c *gin.Context, jwtService usecase.JWTService) (*entity.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}
	claims, err := jwtService.ParseAccessToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// CurrentViewer reads the viewer placed in the context by the auth
// middleware.
func CurrentViewer(c *gin.Context) (entity.Viewer, bool) {
	v, exists := c.Get(ViewerKey)
	if !exists {
		return entity.Viewer{}, false
	}
	viewer, ok := v.(entity.Viewer)
	return viewer, ok
}
