package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mikiasgoitom/ScribeSpace/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

type Router struct {
	articleHandler *ArticleHandler
	userHandler    *UserHandler
	mediaHandler   *MediaHandler
	healthHandler  *HealthHandler
	logger         *zerolog.Logger
	config         usecasecontract.IConfigProvider
}

func NewRouter(articleUsecase usecasecontract.IArticleUseCase, mediaUsecase usecasecontract.IMediaUseCase, userUsecase usecasecontract.IUserUseCase, db Pinger, logger *zerolog.Logger, config usecasecontract.IConfigProvider) *Router {
	maxUpload := config.GetMaxUploadBytes()
	return &Router{
		articleHandler: NewArticleHandler(articleUsecase, mediaUsecase, maxUpload),
		userHandler:    NewUserHandler(userUsecase, maxUpload),
		mediaHandler:   NewMediaHandler(mediaUsecase, config.GetMediaCacheControl()),
		healthHandler:  NewHealthHandler(db),
		logger:         logger,
		config:         config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(r.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.config.GetRateLimitRPS())))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", r.healthHandler.Health)
	router.GET("/media/*filepath", r.mediaHandler.ServeMedia)

	api := router.Group("/api")

	articles := api.Group("/articles")
	{
		articles.POST("/publish", r.articleHandler.PublishArticle)
		articles.GET("/getArticles", r.articleHandler.GetArticles)
		articles.GET("/getArticle/:id", r.articleHandler.GetArticleByID)
		articles.POST("/uploadMedia", r.articleHandler.UploadMedia)
		articles.POST("/getRecommendations", r.articleHandler.GetRecommendations)
		articles.PUT("/updateImageUrl/:articleId", r.articleHandler.UpdateImageURL)
		articles.PUT("/incrementViews/:articleId", r.articleHandler.IncrementViews)
		articles.GET("/user/:userId", r.articleHandler.GetArticlesByUserID)
	}

	users := api.Group("/users")
	{
		users.POST("/createUser", r.userHandler.CreateUser)
		users.POST("/login", r.userHandler.Login)
		users.GET("/getUserById/:userId", r.userHandler.GetUser)
		users.PUT("/profile/:userId", r.userHandler.UpdateProfile)
	}
}
