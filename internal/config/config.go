package config

import (
	"os"
	"strconv"
	"strings"
)

// Config centralizes runtime settings for the API process.
type Config struct {
	Port string

	AuthToken string

	// Storage backend selection: DATABASE_URL wins, then REDIS_ADDR, then
	// DATA_FILE, then in-memory.
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisNamespace string
	DataFile       string

	CORSAllowedOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int

	// Chaos knobs reproduce the simulated network: uniform latency on every
	// route and a failure roll on designated mutating routes.
	ChaosFailureRate  float64
	ChaosMinLatencyMS int
	ChaosMaxLatencyMS int

	SeedOnStart bool
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		AuthToken: getEnv("API_AUTH_TOKEN", ""),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisNamespace: getEnv("REDIS_NAMESPACE", "talentflow"),
		DataFile:       getEnv("DATA_FILE", "talentflow.json"),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", "*"),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),

		ChaosFailureRate:  getEnvFloat("CHAOS_FAILURE_RATE", 0.08),
		ChaosMinLatencyMS: getEnvInt("CHAOS_MIN_LATENCY_MS", 200),
		ChaosMaxLatencyMS: getEnvInt("CHAOS_MAX_LATENCY_MS", 1200),

		SeedOnStart: getEnvBool("SEED_ON_START", true),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key, fallback string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = fallback
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
