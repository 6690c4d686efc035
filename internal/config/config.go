package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPPort      string
	StorageDriver string
	LogLevel      string
	Timezone      *time.Location
	OpTimeout     time.Duration

	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Scorer   ScorerConfig
	Outbox   OutboxConfig
	Screener ScreenerConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the libpq keyword/value connection string understood by pgxpool.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// VerdictTTL bounds how long a cached screening verdict may be served.
	VerdictTTL time.Duration
}

type KafkaConfig struct {
	Brokers           []string
	NotificationTopic string
	ConsumerGroup     string
}

type ScorerConfig struct {
	URL        string
	Timeout    time.Duration
	RetryCount int
}

type OutboxConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// ScreenerConfig describes the public screening flow donors are sent to when
// they are not eligible.
type ScreenerConfig struct {
	BaseURL string
}

// loadEnv looks for a .env file next to the binary's working directory or in
// one of its parents, falling back to .example.env. Missing files are fine:
// plain environment variables still apply.
func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("config: cannot resolve working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			log.Printf("Loaded environment variables from %s", examplePath)
			return
		}
	}
}

// Load reads .env (if any) and then the process environment.
func Load() (*Config, error) {
	loadEnv()
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	tzName := getEnv("TIMEZONE", "Local")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tzName, err)
	}

	driver := strings.ToLower(getEnv("STORAGE_DRIVER", DriverPostgres))
	if driver != DriverPostgres && driver != DriverMemory {
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q", driver)
	}

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "9000"),
		StorageDriver: driver,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Timezone:      loc,
		OpTimeout:     getDuration("OP_TIMEOUT", 5*time.Second),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getInt("DB_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			Name:     getEnv("POSTGRES_DB", "bloodcamp"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:       os.Getenv("REDIS_ADDR"),
			Password:   os.Getenv("REDIS_PASSWORD"),
			DB:         getInt("REDIS_DB", 0),
			VerdictTTL: getDuration("REDIS_VERDICT_TTL", 10*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:           splitList(os.Getenv("KAFKA_BROKERS")),
			NotificationTopic: getEnv("NOTIFICATION_TOPIC", "donor_notifications"),
			ConsumerGroup:     getEnv("KAFKA_CONSUMER_GROUP", "notification-consumer-group"),
		},
		Scorer: ScorerConfig{
			URL:        os.Getenv("SCORER_URL"),
			Timeout:    getDuration("SCORER_TIMEOUT", 10*time.Second),
			RetryCount: getInt("SCORER_RETRY_COUNT", 2),
		},
		Outbox: OutboxConfig{
			PollInterval: getDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),
			BatchSize:    getInt("OUTBOX_BATCH_SIZE", 50),
			MaxAttempts:  getInt("OUTBOX_MAX_ATTEMPTS", 5),
		},
		Screener: ScreenerConfig{
			BaseURL: getEnv("SCREENING_BASE_URL", "/screening"),
		},
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: %s=%q is not a duration, using %s", key, v, def)
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
