package main

import (
	"lovewall/pkg/cache"
	"lovewall/pkg/config"
	"lovewall/pkg/database"
	"lovewall/pkg/logger"
	internal "lovewall/services/songs/internal/app"
)

// @title           Song Requests API
// @version         1.0
// @description     Guest song request board with catalog search for the wedding PWA.

// @host      localhost:8002
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

	// The search cache is optional; lookups just hit the catalog directly
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, search caching disabled: %v", err)
		redisClient = nil
	}

	internal.Run(cfg, log, db, redisClient)
}
