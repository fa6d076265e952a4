package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	handlerHttp "github.com/mikiasgoitom/ScribeSpace/internal/handler/http"
	redisclient "github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/cache"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/config"
	database "github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/database"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/storage"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/store"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/tracing"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/validator"
	"github.com/mikiasgoitom/ScribeSpace/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewZeroLogger(appConfig.LogLevel, !appConfig.IsProduction())
	if err := appConfig.Validate(); err != nil {
		appLogger.Fatalf("invalid configuration: %v", err)
	}
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional tracing
	if appConfig.OtelEnabled {
		provider, err := tracing.NewProvider(ctx, tracing.Config{
			ServiceName: appConfig.OtelServiceName,
			Environment: appConfig.AppEnv,
		})
		if err != nil {
			appLogger.Fatalf("Failed to start tracing: %v", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				appLogger.Warnf("tracing shutdown: %v", err)
			}
		}()
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI, appConfig.MongoTimeout)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			appLogger.Warnf("mongo disconnect: %v", err)
		}
	}()
	db := mongoClient.Client.Database(appConfig.MongoDBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Services
	uuidGenerator := uuidgen.NewGenerator()
	hasher := passwordservice.NewHasher(appConfig.BcryptCost)
	appValidator := validator.NewValidator()
	authProvider := external_services.NewKratosAuth(appConfig.KratosPublicURL, appConfig.KratosTimeout)
	mediaStorage, err := storage.NewGridFSStorage(db, appConfig.MediaBucket, appConfig.MediaPublicBaseURL)
	if err != nil {
		appLogger.Fatalf("Failed to open media bucket: %v", err)
	}

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection(database.UsersCollection))
	articleRepo := mongodb.NewArticleRepository(db)
	tagRepo := mongodb.NewTagRepository(db, uuidGenerator)

	// Dependency Injection: Usecases
	articleUsecase := usecase.NewArticleUseCase(articleRepo, tagRepo, uuidGenerator, appLogger)
	mediaUsecase := usecase.NewMediaUseCase(mediaStorage, uuidGenerator, appLogger)
	userUsecase := usecase.NewUserUsecase(userRepo, authProvider, mediaStorage, hasher, appLogger, appValidator, uuidGenerator)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			appLogger.Warnf("redis unavailable, serving without cache: %v", err)
		} else {
			defer rdb.Close()
			articleUsecase.SetArticleCache(store.NewArticleCacheStore(rdb, appConfig.CacheDetailTTL, appConfig.CacheListTTL))
		}
	}

	// Setup API routes
	router := gin.New()
	router.Use(gin.Recovery())
	appRouter := handlerHttp.NewRouter(articleUsecase, mediaUsecase, userUsecase, mongoClient, appLogger.Zerolog(), appConfig)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           otelhttp.NewHandler(router, appConfig.OtelServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server
	go func() {
		appLogger.Infof("Server running on port %s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}
