package api

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// Config carries environment-driven settings for the admin processes.
type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"local"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`

	CMSBaseURL  string        `env:"CMS_BASE_URL" env-required:"true"`
	CMSAPIToken string        `env:"CMS_API_TOKEN"`
	CMSTimeout  time.Duration `env:"CMS_TIMEOUT" env-default:"10s"`

	PostgresDSN string `env:"POSTGRES_DSN"`

	TemporalAddress   string `env:"TEMPORAL_ADDRESS"`
	TemporalNamespace string `env:"TEMPORAL_NAMESPACE"`
	TemporalDisabled  bool   `env:"TEMPORAL_DISABLED" env-default:"false"`

	KafkaBrokers    []string `env:"KAFKA_BROKERS" env-separator:","`
	KafkaOrderTopic string   `env:"KAFKA_ORDER_TOPIC" env-default:"shop-admin.orders"`

	SessionTTLHours      int           `env:"SESSION_TTL_HOURS" env-default:"12"`
	SessionPurgeInterval time.Duration `env:"SESSION_PURGE_INTERVAL" env-default:"1h"`
	SearchDebounce       time.Duration `env:"SEARCH_DEBOUNCE" env-default:"500ms"`
	DefaultPageSize      int           `env:"DEFAULT_PAGE_SIZE" env-default:"10"`
}

// LoadConfig reads an optional .env file, then the environment, applies defaults and validates.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.CMSBaseURL = strings.TrimSpace(c.CMSBaseURL)
	if c.CMSBaseURL == "" {
		return Config{}, errors.New("CMS_BASE_URL is required")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return Config{}, err
	}
	if c.TemporalAddress == "" {
		c.TemporalAddress = client.DefaultHostPort
	}
	if c.TemporalNamespace == "" {
		c.TemporalNamespace = client.DefaultNamespace
	}
	brokers := c.KafkaBrokers[:0]
	for _, b := range c.KafkaBrokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	c.KafkaBrokers = brokers
	if c.SessionTTLHours <= 0 {
		return Config{}, errors.New("SESSION_TTL_HOURS must be a positive integer")
	}
	if c.CMSTimeout <= 0 {
		return Config{}, errors.New("CMS_TIMEOUT must be positive")
	}
	if c.SearchDebounce < 0 {
		return Config{}, errors.New("SEARCH_DEBOUNCE must not be negative")
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > pagination.MaxPageSize {
		return Config{}, fmt.Errorf("DEFAULT_PAGE_SIZE must be between 1 and %d", pagination.MaxPageSize)
	}
	return c, nil
}

// SlogLevel is the minimum level written by the process logger.
func (c Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// SessionTTL is the lifetime of an admin session.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
