package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/SooLee99/safe-guide-backend/internal/app"
	"github.com/SooLee99/safe-guide-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("config/config.yml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal("app", zap.Error(err))
	}
}
