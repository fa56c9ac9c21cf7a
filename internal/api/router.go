package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campusnet/social-api/docs"
	"github.com/campusnet/social-api/internal/api/handler"
	"github.com/campusnet/social-api/internal/api/middleware"
	"github.com/campusnet/social-api/internal/core/ports"
	"github.com/campusnet/social-api/internal/core/service"
	"github.com/campusnet/social-api/internal/infrastructure/config"
	mongorepo "github.com/campusnet/social-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/campusnet/social-api/internal/infrastructure/db/redis"
	"github.com/campusnet/social-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, images ports.ImageStore, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("social"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	postRepo := mongorepo.NewPostRepository(db)
	commentRepo := mongorepo.NewCommentRepository(db)
	authorshipRepo := mongorepo.NewAuthorshipRepository(db)

	// --- Services ---
	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, time.Duration(cfg.TokenTTLMin)*time.Minute)
	if err != nil {
		return nil, err
	}
	throttle := redisinfra.NewLoginThrottle(rdb, cfg.LoginMaxFailures, time.Duration(cfg.LoginWindowMinutes)*time.Minute)
	guard := service.NewOwnershipGuard(authorshipRepo)

	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	userService := service.NewUserService(userRepo, postRepo, log)
	postService := service.NewPostService(postRepo, guard, images, log)
	commentService := service.NewCommentService(commentRepo, postRepo, guard, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(authService)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/users", authHandler.ListUsers, authRequired)
	auth.DELETE("/users/:id", authHandler.DeleteUser, authRequired)

	// --- User routes ---
	users := e.Group("/users", authRequired)
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateMe)
	users.GET("/me/feed", userHandler.Feed)
	users.GET("/search/:query", userHandler.Search)
	users.GET("/:id", userHandler.Get)
	users.POST("/:id/follow", userHandler.Follow)
	users.POST("/:id/unfollow", userHandler.Unfollow)

	// --- Post routes ---
	posts := e.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, authRequired)
	posts.PUT("/:id", postHandler.Update, authRequired)
	posts.DELETE("/:id", postHandler.Delete, authRequired)
	posts.POST("/:id/like", postHandler.Like, authRequired)

	// --- Comment routes ---
	comments := e.Group("/comments")
	comments.GET("/post/:post_id", commentHandler.ListForPost)
	comments.POST("/:post_id", commentHandler.Create, authRequired)
	comments.PUT("/:id", commentHandler.Update, authRequired)
	comments.DELETE("/:id", commentHandler.Delete, authRequired)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served straight off disk when the local store
	// is in use; S3 serves its own objects.
	if local, ok := images.(*storage.LocalImageStore); ok {
		e.Static("/uploads", local.Dir())
	}

	return e, nil
}
