package main

import (
	"lovewall/pkg/config"
	"lovewall/pkg/logger"
	internal "lovewall/services/program/internal/app"
)

// @title           Event Program API
// @version         1.0
// @description     Wedding weekend schedule for the wedding PWA.

// @host      localhost:8003
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	internal.Run(cfg, log)
}
