package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	handlerHttp "github.com/yonatanberih/pulse/internal/handler/http"
	"github.com/yonatanberih/pulse/internal/infrastructure/broker"
	redisclient "github.com/yonatanberih/pulse/internal/infrastructure/cache"
	"github.com/yonatanberih/pulse/internal/infrastructure/config"
	database "github.com/yonatanberih/pulse/internal/infrastructure/database"
	"github.com/yonatanberih/pulse/internal/infrastructure/external_services"
	"github.com/yonatanberih/pulse/internal/infrastructure/jwt"
	"github.com/yonatanberih/pulse/internal/infrastructure/logger"
	passwordservice "github.com/yonatanberih/pulse/internal/infrastructure/password_service"
	"github.com/yonatanberih/pulse/internal/infrastructure/repository/mongodb"
	"github.com/yonatanberih/pulse/internal/infrastructure/storage"
	"github.com/yonatanberih/pulse/internal/infrastructure/store"
	"github.com/yonatanberih/pulse/internal/infrastructure/uuidgen"
	"github.com/yonatanberih/pulse/internal/infrastructure/validator"
	"github.com/yonatanberih/pulse/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(dbName)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Fatal("REDIS_URL environment variable not set")
	}
	rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
	defer redisclient.Close(rdb)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	appLogger := logger.NewStdLogger()
	appConfig := config.NewConfig()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	oauthProvider := external_services.NewGoogleOAuthProvider(
		os.Getenv("GOOGLE_CLIENT_ID"),
		os.Getenv("GOOGLE_CLIENT_SECRET"),
		appConfig.GetAppBaseURL()+"/api/v1/auth/google/callback",
	)
	mediaService := external_services.NewMediaService(appConfig.GetMediaUploadURL(), appConfig.GetMediaUploadPreset())

	objectStorage, err := storage.NewObjectStorage(storage.Config{
		Endpoint:      os.Getenv("STORAGE_ENDPOINT"),
		AccessKey:     os.Getenv("STORAGE_ACCESS_KEY"),
		SecretKey:     os.Getenv("STORAGE_SECRET_KEY"),
		UseSSL:        os.Getenv("STORAGE_USE_SSL") == "true",
		Bucket:        appConfig.GetUploadBucket(),
		PublicBaseURL: os.Getenv("STORAGE_PUBLIC_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := objectStorage.EnsureBucket(context.Background()); err != nil {
		log.Fatalf("Failed to ensure upload bucket: %v", err)
	}

	// Dependency Injection: Repositories
	userRepo := mongodb.NewUserRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	watcher := mongodb.NewContentWatcher(db, commentRepo, appLogger)
	engagementCache := store.NewEngagementCache(rdb)

	// Optional Dependency Injection: Kafka live delivery
	var publisher *broker.NotificationPublisher
	if bootstrap := os.Getenv("KAFKA_BOOTSTRAP"); bootstrap != "" {
		topic := os.Getenv("KAFKA_NOTIFICATIONS_TOPIC")
		if topic == "" {
			topic = "notifications"
		}
		publisher = broker.NewNotificationPublisher(bootstrap, topic)
		defer publisher.Close()
	}

	// Dependency Injection: Usecases
	notificationUsecase := usecase.NewNotificationUsecase(notificationRepo, publisherOrNil(publisher), uuidGenerator, appLogger)
	realtimeSync := usecase.NewRealtimeSync(watcher, appLogger)
	engagementUsecase := usecase.NewEngagementUsecase(contentRepo, commentRepo, userRepo, engagementCache, uuidGenerator, notificationUsecase, realtimeSync, appConfig.GetInteractionCooldown(), appLogger)
	contentUsecase := usecase.NewContentUsecase(contentRepo, mediaService, uuidGenerator, appLogger)
	uploadUsecase := usecase.NewUploadUsecase(objectStorage, contentRepo, uuidGenerator, appLogger)
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, oauthProvider, appValidator, uuidGenerator, appLogger)

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(userUsecase, contentUsecase, engagementUsecase, uploadUsecase, notificationUsecase, jwtService)
	appRouter.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// publisherOrNil keeps the notification usecase's publisher a plain nil
// interface when Kafka is not configured. A non-nil interface holding a nil
// pointer would defeat its nil check.
func publisherOrNil(p *broker.NotificationPublisher) contract.INotificationPublisher {
	if p == nil {
		return nil
	}
	return p
}
