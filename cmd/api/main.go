package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"tattoohub/internal/config"
	"tattoohub/internal/database"
	"tattoohub/internal/logger"
	"tattoohub/internal/mail"
	"tattoohub/internal/pkg/jwt"
	"tattoohub/internal/router"
	"tattoohub/internal/search"
	"tattoohub/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.AppName, cfg.AppEnv)
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate database")
	}

	ctx := context.Background()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unavailable, rate limiting fails open")
		}
		defer func() { _ = rdb.Close() }()
	} else {
		log.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("init storage")
	}
	if c, ok := store.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	es, err := search.NewClient(cfg.ElasticsearchAddrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.WithError(err).Fatal("init elasticsearch")
	}
	if es == nil {
		log.Info("ELASTICSEARCH_ADDRS not set, artist search disabled")
	}

	var mailer mail.Publisher = mail.LogPublisher{Log: log}
	if cfg.RabbitMQURL != "" {
		pub, err := mail.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			log.WithError(err).Fatal("connect rabbitmq")
		}
		defer pub.Close()
		mailer = pub
	}

	r := router.New(router.Deps{
		Config: cfg,
		Log:    log,
		DB:     db,
		JWT:    jwt.New(cfg.JWTSecret, cfg.JWTTTL),
		Redis:  rdb,
		Store:  store,
		Search: search.NewArtistIndex(es, cfg.ESArtistsIndex),
		Mailer: mailer,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exited")
}
