package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// RedisConfig holds connection settings for the Redis instance backing
// the scheduled-post queue and the refresh-token blacklist.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds JWT signing settings.
type AuthConfig struct {
	Secret         string
	AccessTTLMin   int
	RefreshTTLHour int
}

// SchedulerConfig controls the deferred-publication queue and its worker.
type SchedulerConfig struct {
	QueueKey        string
	PollIntervalSec int
	BatchSize       int
	MinDelaySec     int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string
	TimeZone  string
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Scheduler SchedulerConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", ""),
		Port:     getEnv("PORT", "8080"), // default only for non-sensitive value
		TimeZone: getEnv("TIME_ZONE", "UTC"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			Secret:         getEnv("JWT_SECRET", ""),
			AccessTTLMin:   getEnvInt("JWT_ACCESS_TTL_MIN", 60),
			RefreshTTLHour: getEnvInt("JWT_REFRESH_TTL_HOUR", 24),
		},
		Scheduler: SchedulerConfig{
			QueueKey:        getEnv("SCHEDULER_QUEUE_KEY", "scheduled_posts"),
			PollIntervalSec: getEnvInt("SCHEDULER_POLL_INTERVAL_SEC", 1),
			BatchSize:       getEnvInt("SCHEDULER_BATCH_SIZE", 100),
			MinDelaySec:     getEnvInt("SCHEDULER_MIN_DELAY_SEC", 5),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
