package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the readiness service.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	DatabaseURL string
	RedisURL    string

	UploadDir string
	ExportDir string

	SessionTTL time.Duration

	Admin     AdminConfig
	Readiness ReadinessConfig
	Events    EventsConfig
}

// AdminConfig holds the fixed administrator credentials. The admin identity
// is a session flag, not a row in the users table.
type AdminConfig struct {
	Email    string
	Password string
}

// ReadinessConfig selects the feedback tier preset used by the readiness
// calculator. See services.TierPreset for the available presets.
type ReadinessConfig struct {
	TierPreset string
}

// EventsConfig configures the domain event publisher. With no brokers set
// the service uses an in-process publisher.
type EventsConfig struct {
	KafkaBrokers []string
	Topic        string
}

// LoadConfig reads configuration from the environment, loading a local .env
// file first when present.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=readiness port=5432 sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		ExportDir:   getEnv("EXPORT_DIR", "."),
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@tracker.com"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Readiness: ReadinessConfig{
			TierPreset: getEnv("READINESS_TIER_PRESET", "standard"),
		},
		Events: EventsConfig{
			Topic: getEnv("EVENTS_TOPIC", "readiness.events"),
		},
	}

	ttl, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "120"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %q", getEnv("SESSION_TTL_MINUTES", "120"))
	}
	cfg.SessionTTL = time.Duration(ttl) * time.Minute

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Events.KafkaBrokers = append(cfg.Events.KafkaBrokers, b)
			}
		}
	}

	if cfg.Readiness.TierPreset != "standard" && cfg.Readiness.TierPreset != "minimal" {
		return nil, fmt.Errorf("invalid READINESS_TIER_PRESET: %q (must be 'standard' or 'minimal')", cfg.Readiness.TierPreset)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
