package main

import (
	"github.com/joho/godotenv"
	"github.com/linkloom/linkloom/db"
	"github.com/linkloom/linkloom/internal/auth"
	"github.com/linkloom/linkloom/internal/config"
	"github.com/linkloom/linkloom/internal/router"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()

	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		logrus.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
