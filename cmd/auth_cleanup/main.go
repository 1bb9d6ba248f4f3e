package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"tattoohub/internal/config"
	"tattoohub/internal/database"
	"tattoohub/internal/logger"
	"tattoohub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.AppName, cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := repository.NewPasswordResetRepository(db).DeleteStale(ctx, time.Now())
	if err != nil {
		log.WithError(err).Fatal("cleanup password_resets failed")
	}
	log.WithField("password_resets", n).Info("auth cleanup completed")
}
