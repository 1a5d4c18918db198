package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lovewall/pkg/config"
	"lovewall/pkg/jwt"
	"lovewall/pkg/logger"
	"lovewall/pkg/middleware"
	songsHTTP "lovewall/services/songs/internal/controller/http"
	"lovewall/services/songs/internal/itunes"
	"lovewall/services/songs/internal/repo/persistent"
	"lovewall/services/songs/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "lovewall/services/songs/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	songRepo := persistent.NewSongRepository(db)

	// Initialize use cases
	itunesClient := itunes.NewClient(cfg.ITunesBaseURL, cfg.ITunesTimeout)
	songsUseCase := usecase.NewSongsUseCase(songRepo, itunesClient, redisClient, log)

	// Initialize HTTP handlers
	songsHandler := songsHTTP.NewSongsHandler(songsUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/songs", songsHandler.ListRequests)
		api.POST("/songs", songsHandler.CreateRequest)
		api.GET("/songs/search", songsHandler.SearchTracks)
		api.POST("/songs/:id/upvote", songsHandler.UpvoteRequest)
	}

	// Moderation endpoints require an admin token
	moderation := api.Group("")
	moderation.Use(middleware.AuthMiddleware(jwtService))
	moderation.Use(middleware.RequireRole("admin"))
	{
		moderation.DELETE("/songs/:id", songsHandler.DeleteRequest)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Songs service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down songs service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Songs service exited")
}
