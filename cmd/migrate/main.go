package main

import (
	"log"

	"quizsheet/internal/config"
	"quizsheet/internal/database"
	"quizsheet/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if err := database.RunMigrations(cfg.DB.MigrationsDir, cfg.DB.Path); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied",
		zap.String("migrations_dir", cfg.DB.MigrationsDir),
		zap.String("db_path", cfg.DB.Path),
	)
}
