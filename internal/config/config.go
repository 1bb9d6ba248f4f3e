package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "5000"
	defaultDatabaseURL   = "tattoohub.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "3600s"
	defaultBcryptRounds  = 13
	defaultResetTokenTTL = "15m"
	defaultRateLimitAuth = 20
	defaultRateWindow    = "1m"
	defaultStorageDriver = "local"
	defaultUploadsDir    = "./uploads"
	defaultUploadsURL    = "/static/uploads"
	defaultImageMaxWidth = 1600
	defaultImageQuality  = 82
	defaultEmailQueue    = "emails"
	defaultArtistsIndex  = "artists"
	defaultResetURL      = "http://localhost:3000/reset-password"
)

type Config struct {
	AppName string
	AppEnv  string
	Port    string
	GinMode string

	DatabaseURL string

	JWTSecret     string
	JWTTTL        time.Duration
	BcryptRounds  int
	ResetTokenTTL time.Duration
	ResetURL      string

	CORSAllowedOrigins []string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RateLimitAuth   int
	RateLimitWindow time.Duration

	StorageDriver  string
	UploadsDir     string
	UploadsURLBase string
	ImageMaxWidth  int
	ImageQuality   int

	GCSBucket          string
	GCSCredentialsPath string

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicURL       string

	ElasticsearchAddrs []string
	ElasticsearchUser  string
	ElasticsearchPass  string
	ESArtistsIndex     string

	RabbitMQURL        string
	RabbitMQEmailQueue string

	MailSendEnabled bool
	MailgunDomain   string
	MailgunAPIKey   string
	MailgunSender   string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppName:     getEnv("APP_NAME", "tattoohub"),
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "development"))),
		Port:        strings.TrimSpace(getEnv("PORT", defaultPort)),
		GinMode:     getEnv("GIN_MODE", "release"),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),

		JWTSecret: strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		ResetURL:  strings.TrimRight(getEnv("RESET_PASSWORD_URL", defaultResetURL), "/"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		StorageDriver:  strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", defaultStorageDriver))),
		UploadsDir:     getEnv("UPLOADS_DIR", defaultUploadsDir),
		UploadsURLBase: strings.TrimRight(getEnv("UPLOADS_URL_BASE", defaultUploadsURL), "/"),

		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCSCredentialsPath: os.Getenv("GCS_CREDENTIALS_PATH"),

		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3PublicURL:       strings.TrimRight(os.Getenv("S3_PUBLIC_URL"), "/"),

		ElasticsearchAddrs: splitList(os.Getenv("ELASTICSEARCH_ADDRS")),
		ElasticsearchUser:  os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticsearchPass:  os.Getenv("ELASTICSEARCH_PASSWORD"),
		ESArtistsIndex:     getEnv("ES_ARTISTS_INDEX", defaultArtistsIndex),

		RabbitMQURL:        strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		RabbitMQEmailQueue: getEnv("RABBITMQ_EMAIL_QUEUE", defaultEmailQueue),

		MailSendEnabled: parseBoolEnv("MAIL_SEND_ENABLED", "true"),
		MailgunDomain:   os.Getenv("MAILGUN_DOMAIN"),
		MailgunAPIKey:   os.Getenv("MAILGUN_API_KEY"),
		MailgunSender:   os.Getenv("MAILGUN_SENDER"),
	}

	var err error
	if cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.ResetTokenTTL, err = parseDurationEnv("RESET_TOKEN_TTL", defaultResetTokenTTL); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = parseDurationEnv("RATE_LIMIT_WINDOW", defaultRateWindow); err != nil {
		return nil, err
	}
	if cfg.BcryptRounds, err = parseIntEnv("BCRYPT_ROUNDS", defaultBcryptRounds); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = parseIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitAuth, err = parseIntEnv("RATE_LIMIT_AUTH", defaultRateLimitAuth); err != nil {
		return nil, err
	}
	if cfg.ImageMaxWidth, err = parseIntEnv("IMAGE_MAX_WIDTH", defaultImageMaxWidth); err != nil {
		return nil, err
	}
	if cfg.ImageQuality, err = parseIntEnv("IMAGE_QUALITY", defaultImageQuality); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.ResetTokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be > 0")
	}
	if cfg.BcryptRounds < 4 || cfg.BcryptRounds > 31 {
		return fmt.Errorf("BCRYPT_ROUNDS must be between 4 and 31")
	}
	if cfg.ImageMaxWidth <= 0 {
		return fmt.Errorf("IMAGE_MAX_WIDTH must be > 0")
	}
	if cfg.ImageQuality < 1 || cfg.ImageQuality > 100 {
		return fmt.Errorf("IMAGE_QUALITY must be between 1 and 100")
	}

	switch cfg.StorageDriver {
	case "local":
	case "gcs":
		if cfg.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when STORAGE_DRIVER=gcs")
		}
	case "s3":
		if cfg.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: local, gcs, s3")
	}

	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return i, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
