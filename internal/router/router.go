// Package router assembles the gin engine: global middleware, static files
// and every /api module.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tattoohub/internal/config"
	"tattoohub/internal/imaging"
	"tattoohub/internal/mail"
	"tattoohub/internal/middleware"
	"tattoohub/internal/modules/artist"
	"tattoohub/internal/modules/auth"
	"tattoohub/internal/modules/client"
	"tattoohub/internal/modules/studio"
	"tattoohub/internal/modules/style"
	"tattoohub/internal/modules/upload"
	"tattoohub/internal/modules/user"
	"tattoohub/internal/pkg/jwt"
	"tattoohub/internal/repository"
	"tattoohub/internal/search"
	"tattoohub/internal/storage"
)

// Deps are the process-wide singletons built in cmd/api. Redis may be nil.
type Deps struct {
	Config *config.Config
	Log    logrus.FieldLogger
	DB     *gorm.DB
	JWT    *jwt.Service
	Redis  *redis.Client
	Store  storage.Store
	Search *search.ArtistIndex
	Mailer mail.Publisher
}

func New(d Deps) *gin.Engine {
	cfg := d.Config
	if d.Mailer == nil {
		d.Mailer = mail.LogPublisher{Log: d.Log}
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(d.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "x-auth-token", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.IsDevelopment() {
		r.Use(gin.Logger())
	}

	if local, ok := d.Store.(*storage.Local); ok {
		r.Static(cfg.UploadsURLBase, local.Dir())
	}

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := d.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.JWTAuth(d.JWT)
	limit := middleware.RateLimit(d.Redis, cfg.RateLimitAuth, cfg.RateLimitWindow, middleware.KeyByIPAndPath())

	users := repository.NewUserRepository(d.DB)
	artists := repository.NewArtistRepository(d.DB)
	studios := repository.NewStudioRepository(d.DB)
	clients := repository.NewClientRepository(d.DB)
	styles := repository.NewStyleRepository(d.DB)
	uploads := repository.NewUploadRepository(d.DB)
	resets := repository.NewPasswordResetRepository(d.DB)

	api := r.Group("/api")

	user.NewHandler(user.NewService(users, d.JWT, cfg.BcryptRounds, d.Log)).
		RegisterRoutes(api, requireAuth, limit)

	auth.NewHandler(auth.NewService(users, resets, d.JWT, d.Mailer, auth.Options{
		AppName:      cfg.AppName,
		BcryptRounds: cfg.BcryptRounds,
		ResetTTL:     cfg.ResetTokenTTL,
		ResetURL:     cfg.ResetURL,
	}, d.Log)).RegisterRoutes(api, requireAuth, limit)

	artist.NewHandler(artist.NewService(artists, d.Search, d.Log)).RegisterRoutes(api, requireAuth)
	studio.NewHandler(studio.NewService(studios, d.Log)).RegisterRoutes(api, requireAuth)
	client.NewHandler(client.NewService(clients, d.Log)).RegisterRoutes(api, requireAuth)
	style.NewHandler(style.NewService(styles)).RegisterRoutes(api)

	processor := imaging.NewProcessor(cfg.ImageMaxWidth, cfg.ImageQuality)
	upload.NewHandler(upload.NewService(uploads, d.Store, processor, d.Log)).RegisterRoutes(api, requireAuth)

	return r
}
