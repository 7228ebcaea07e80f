package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	WordSourceEmbedded = "embedded"
	WordSourceFile     = "file"
	WordSourceURL      = "url"
	WordSourceMySQL    = "mysql"

	defaultWordListURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt"
	devJWTSecret       = "dev-secret-change-in-production"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port string
	Env  string

	WordSource   string
	WordListPath string
	WordListURL  string
	WordCacheDir string
	DatabaseDSN  string

	// JWTSecret enables bearer token auth on the API when non-empty.
	JWTSecret string
	JWTExpiry time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		WordSource:   getEnv("WORD_SOURCE", WordSourceEmbedded),
		WordListPath: getEnv("WORD_LIST_PATH", ""),
		WordListURL:  getEnv("WORD_LIST_URL", defaultWordListURL),
		WordCacheDir: getEnv("WORD_CACHE_DIR", defaultCacheDir()),
		DatabaseDSN:  getEnv("DATABASE_DSN", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
	}

	var err error
	if cfg.JWTExpiry, err = time.ParseDuration(getEnv("JWT_EXPIRY", "24h")); err != nil {
		return Config{}, fmt.Errorf("%w: JWT_EXPIRY: %w", ErrInvalidConfig, err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("%w: RATE_LIMIT_RPS: %w", ErrInvalidConfig, err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("%w: RATE_LIMIT_BURST: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected word source has what it needs.
func (c Config) Validate() error {
	switch c.WordSource {
	case WordSourceEmbedded:
	case WordSourceFile:
		if c.WordListPath == "" {
			return fmt.Errorf("%w: WORD_LIST_PATH is required for the file word source", ErrInvalidConfig)
		}
	case WordSourceURL:
		if c.WordListURL == "" {
			return fmt.Errorf("%w: WORD_LIST_URL is required for the url word source", ErrInvalidConfig)
		}
	case WordSourceMySQL:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("%w: DATABASE_DSN is required for the mysql word source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown WORD_SOURCE %q", ErrInvalidConfig, c.WordSource)
	}

	if c.Env == "production" && c.JWTSecret == devJWTSecret {
		return fmt.Errorf("%w: JWT_SECRET must be changed in production", ErrInvalidConfig)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: rate limit values must be positive", ErrInvalidConfig)
	}
	return nil
}

// AuthEnabled reports whether API requests need a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		slog.Debug("no user cache dir, using temp dir", "error", err)
		dir = os.TempDir()
	}
	return filepath.Join(dir, "passgen")
}
