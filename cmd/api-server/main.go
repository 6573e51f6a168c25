package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"artgrid/internal/config"
	"artgrid/internal/database"
	"artgrid/internal/http-api/handler"
	"artgrid/internal/http-api/middleware"
	"artgrid/internal/http-api/repository"
	"artgrid/internal/http-api/service"
	"artgrid/internal/mailer"
	"artgrid/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	if err := database.SeedAdmin(db, cfg, logger); err != nil {
		log.Fatalf("could not seed admin account: %v", err)
	}

	uploader, err := storage.NewS3Uploader(context.Background(), cfg)
	if err != nil {
		log.Fatalf("could not configure object storage: %v", err)
	}

	mail := mailer.NewSMTPMailer(cfg)

	var cache *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		cache = redis.NewClient(opts)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	moderationRepo := repository.NewModerationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, mail, logger, cfg)
	userService := service.NewUserService(userRepo, artworkRepo)
	artworkService := service.NewArtworkService(artworkRepo, likeRepo, userRepo, uploader, mail, logger)
	moderationService := service.NewModerationService(artworkRepo, moderationRepo, mail, logger)
	commentService := service.NewCommentService(commentRepo, artworkRepo, userRepo, cfg.ProfanityWords)
	statsService := service.NewStatsService(statsRepo, cache, cfg.StatsCacheTTL, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	artworkHandler := handler.NewArtworkHandler(artworkService, cfg.UploadMaxBytes)
	commentHandler := handler.NewCommentHandler(commentService)
	adminHandler := handler.NewAdminHandler(moderationService, statsService, userService)
	userHandler := handler.NewUserHandler(userService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ARTGRID API is live",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	authed := middleware.AuthMiddleware(authService)
	authLimiter := middleware.NewRateLimiter(5, 10)

	authPublic := api.Group("/auth", authLimiter.Middleware())
	authPrivate := api.Group("/auth", authed)
	authHandler.RegisterRoutes(authPublic, authPrivate)

	artworksPublic := api.Group("/artworks")
	artworksPrivate := api.Group("/artworks", authed)
	artworkHandler.RegisterRoutes(artworksPublic, artworksPrivate)

	commentsPublic := api.Group("/comments")
	commentsPrivate := api.Group("/comments", authed)
	commentHandler.RegisterRoutes(commentsPublic, commentsPrivate)

	moderation := api.Group("/admin", authed, middleware.RequireModerator(userRepo))
	admin := api.Group("/admin", authed, middleware.RequireAdmin(userRepo))
	adminHandler.RegisterRoutes(moderation, admin)

	users := api.Group("/users")
	userHandler.RegisterRoutes(users)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
