package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"moviehub/database"
	"moviehub/internal/config"
	"moviehub/internal/handler"
	"moviehub/internal/middleware"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		logger.Info("rate limiter using redis window", "addr", opts.Addr)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	movieService := service.NewMovieService(movieRepo)
	genreService := service.NewGenreService(genreRepo)
	platformService := service.NewPlatformService(platformRepo)
	reviewService := service.NewReviewService(reviewRepo, movieRepo)
	ratingService := service.NewRatingService(ratingRepo, movieRepo)
	watchlistService := service.NewWatchlistService(watchlistRepo, movieRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService, ratingService)
	genreHandler := handler.NewGenreHandler(genreService)
	platformHandler := handler.NewPlatformHandler(platformService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	watchlistHandler := handler.NewWatchlistHandler(watchlistService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	rateLimiter := middleware.NewRateLimiter(cfg.RatePerSecond, cfg.RateBurst, redisClient, logger)
	defer rateLimiter.Stop()
	r.Use(rateLimiter.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthRequired(authService)

	api := r.Group("/api")
	authHandler.RegisterRoutes(api)
	movieHandler.RegisterRoutes(api, authRequired)
	genreHandler.RegisterRoutes(api, authRequired)
	platformHandler.RegisterRoutes(api, authRequired)
	reviewHandler.RegisterRoutes(api, authRequired)
	watchlistHandler.RegisterRoutes(api, authRequired)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
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
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
