package main

import (
	"lovewall/pkg/cache"
	"lovewall/pkg/config"
	"lovewall/pkg/database"
	"lovewall/pkg/logger"
	"lovewall/pkg/queue"
	"lovewall/pkg/storage"
	internal "lovewall/services/wall/internal/app"
)

// @title           Wall of Love API
// @version         1.0
// @description     Photo and video sharing wall for the wedding PWA.

// @host      localhost:8001
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	store, err := storage.NewS3Store(cfg)
	if err != nil {
		log.Error("Failed to create S3 store: %v", err)
		panic(err)
	}

	// Moderation notifications are optional; the wall works without them
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, moderation notifications disabled: %v", err)
		queueClient = nil
	}

	internal.Run(cfg, log, db, store, queueClient, redisClient)
}
