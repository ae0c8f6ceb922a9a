package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Model artifacts
	ModelDir string

	// Data sources. StatsAPIBaseURL, PostgresURL, and RedisURL are all
	// optional: without them the service runs snapshot-only, without the
	// audit log, and without the shared cache tier respectively.
	StatsAPIBaseURL string
	StatsAPITimeout time.Duration
	StatsAPIRetries int
	StatsAPIRate    float64
	TeamDataCSV     string
	PlayerDataCSV   string
	PostgresURL     string
	RedisURL        string

	// Provider cache
	CacheTTL time.Duration

	// Audit worker pool
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
}

// Load loads configuration from environment variables. Nothing here is
// fatal: every source the service can run without simply defaults to off.
func Load() *Config {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		ModelDir: getEnv("MODEL_DIR", "ml_models/exported"),

		StatsAPIBaseURL: getEnv("STATS_API_BASE_URL", ""),
		StatsAPITimeout: getEnvDuration("STATS_API_TIMEOUT", 5*time.Second),
		StatsAPIRetries: getEnvInt("STATS_API_RETRIES", 2),
		StatsAPIRate:    getEnvFloat("STATS_API_RATE_LIMIT", 5),
		TeamDataCSV:     getEnv("TEAM_DATA_CSV", "data/team_game_logs.csv"),
		PlayerDataCSV:   getEnv("PLAYER_DATA_CSV", "data/player_averages.csv"),
		PostgresURL:     getEnv("POSTGRES_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),

		CacheTTL: getEnvDuration("CACHE_TTL", 10*time.Minute),

		WorkerCount:   getEnvInt("WORKER_COUNT", 2),
		QueueSize:     getEnvInt("QUEUE_SIZE", 4096),
		BatchSize:     getEnvInt("BATCH_SIZE", 200),
		FlushInterval: getEnvDuration("FLUSH_INTERVAL", 1*time.Second),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
