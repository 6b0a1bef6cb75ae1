package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Upload    UploadConfig
	Sentiment SentimentConfig
	Report    ReportConfig
	Seed      SeedConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32

	MigrationsDir string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type UploadConfig struct {
	MaxSizeBytes int64
}

// SentimentConfig points at the optional sentiment inference service.
// An empty URL disables the feature.
type SentimentConfig struct {
	URL     string
	Timeout time.Duration
}

type ReportConfig struct {
	// Chrome render timeout for PDF reports.
	Timeout time.Duration
}

// SeedConfig controls the startup seeder for the default recruiter
// account. All three fields must be set for the seeder to run.
type SeedConfig struct {
	RecruiterEmail    string
	RecruiterPassword string
	RecruiterName     string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: durationOr("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32Or("DB_POOL_MAX_CONNS", 0),
		PoolMinConns:   int32Or("DB_POOL_MIN_CONNS", 0),
		MigrationsDir:  opt("DB_MIGRATIONS_DIR"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationOr("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: durationOr("JWT_REFRESH_EXPIRES_IN", 24*time.Hour),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      durationOr("REDIS_TTL", 10*time.Minute),
	}

	cfg.Upload = UploadConfig{
		MaxSizeBytes: int64Or("UPLOAD_MAX_SIZE_BYTES", 16*1024*1024),
	}

	cfg.Sentiment = SentimentConfig{
		URL:     opt("SENTIMENT_URL"),
		Timeout: durationOr("SENTIMENT_TIMEOUT", 3*time.Second),
	}

	cfg.Report = ReportConfig{
		Timeout: durationOr("REPORT_TIMEOUT", 30*time.Second),
	}

	cfg.Seed = SeedConfig{
		RecruiterEmail:    opt("SEED_RECRUITER_EMAIL"),
		RecruiterPassword: opt("SEED_RECRUITER_PASSWORD"),
		RecruiterName:     opt("SEED_RECRUITER_NAME"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationOr(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func int32Or(key string, def int32) int32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return def
	}
	return int32(n)
}

func int64Or(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
