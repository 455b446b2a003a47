package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yonatanberih/pulse/internal/handler/http/middleware"
	"github.com/yonatanberih/pulse/internal/usecase"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

type Router struct {
	userHandler         *UserHandler
	contentHandler      *ContentHandler
	engagementHandler   *EngagementHandler
	uploadHandler       *UploadHandler
	notificationHandler *NotificationHandler
	jwtService          usecase.JWTService
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	contentUsecase usecasecontract.IContentUseCase,
	engagementUsecase usecasecontract.IEngagementUseCase,
	uploadUsecase usecasecontract.IUploadUseCase,
	notificationUsecase usecasecontract.INotificationUseCase,
	jwtService usecase.JWTService,
) *Router {
	return &Router{
		userHandler:         NewUserHandler(userUsecase),
		contentHandler:      NewContentHandler(contentUsecase),
		engagementHandler:   NewEngagementHandler(engagementUsecase),
		uploadHandler:       NewUploadHandler(uploadUsecase),
		notificationHandler: NewNotificationHandler(notificationUsecase),
		jwtService:          jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.DeviceHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)
		auth.GET("/google/login", r.userHandler.GoogleLogin)
		auth.GET("/google/callback", r.userHandler.GoogleCallback)
	}

	// Public user routes
	users := v1.Group("/users")
	{
		users.GET("/profile/:id", r.userHandler.GetUser)
		users.GET("/profile/:id/followers", r.userHandler.ListFollowers)
		users.GET("/profile/:id/following", r.userHandler.ListFollowing)
	}

	// Feeds are public; the engagement surface additionally serves
	// signed-out visitors from their device mirror.
	content := v1.Group("/content")
	content.Use(middleware.OptionalAuthMiddleWare(r.jwtService))
	{
		content.GET("/:kind", r.contentHandler.ListFeed)
		content.GET("/:kind/:contentID", r.contentHandler.GetContent)

		content.POST("/:kind/:contentID/hydrate", r.engagementHandler.Hydrate)
		content.DELETE("/:kind/:contentID/hydrate", r.engagementHandler.Release)
		content.GET("/:kind/:contentID/engagement", r.engagementHandler.State)
		content.POST("/:kind/:contentID/like", r.engagementHandler.ToggleLike)
		content.GET("/:kind/:contentID/comments", r.engagementHandler.ListComments)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.PUT("/me", r.userHandler.UpdateProfile)
		protected.DELETE("/session", r.engagementHandler.CloseSession)

		protected.POST("/blogs", r.contentHandler.CreateBlog)
		protected.GET("/blogs/saved", r.contentHandler.ListSaved)
		protected.POST("/blogs/:contentID/save", r.engagementHandler.ToggleSave)
		protected.DELETE("/content/:kind/:contentID", r.contentHandler.DeleteContent)
		protected.POST("/content/:kind/:contentID/comment", r.engagementHandler.SubmitComment)

		protected.POST("/users/:id/follow", r.engagementHandler.ToggleFollow)

		protected.POST("/uploads", r.uploadHandler.Begin)
		protected.POST("/uploads/:uploadID/select", r.uploadHandler.Select)
		protected.POST("/uploads/:uploadID/run", r.uploadHandler.Run)
		protected.POST("/uploads/:uploadID/cancel", r.uploadHandler.Cancel)
		protected.GET("/uploads/:uploadID", r.uploadHandler.Status)

		protected.GET("/notifications", r.notificationHandler.List)
		protected.PUT("/notifications/:notificationID/read", r.notificationHandler.MarkRead)
		protected.DELETE("/notifications", r.notificationHandler.ClearAll)
	}
}
