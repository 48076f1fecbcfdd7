package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultFailureThreshold is the failure count at which an account is locked.
const DefaultFailureThreshold = 3

// Config captures process level configuration. Backends left unconfigured
// (empty DSN/URL/brokers) fall back to in-memory implementations so the
// service runs standalone in development.
type Config struct {
	Addr             string
	FailureThreshold int
	LogLevel         slog.Level

	PostgresDSN string
	Redis       RedisConfig
	Kafka       KafkaConfig
}

// RedisConfig tunes the go-redis client backing the attempt-counter store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig locates the attempt-change event stream.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	Group   string
}

// Enabled reports whether a Kafka consumer should be started.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

// FromEnv builds a Config from environment variables so main stays lean.
// Invalid numeric values fall back to defaults rather than failing startup.
func FromEnv() Config {
	cfg := Config{
		Addr:             envOr("CREDLOCK_ADDR", ":8080"),
		FailureThreshold: DefaultFailureThreshold,
		LogLevel:         parseLogLevel(os.Getenv("LOG_LEVEL")),
		PostgresDSN:      os.Getenv("POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic: envOr("KAFKA_TOPIC", "login-attempt-changes"),
			Group: envOr("KAFKA_GROUP", "credlock"),
		},
	}

	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}

	// A threshold below 1 would lock accounts on record creation.
	if v := envInt("FAILURE_THRESHOLD", DefaultFailureThreshold); v >= 1 {
		cfg.FailureThreshold = v
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
