package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port        string
	BaseURL     string
	CORSOrigins []string
	// Timezone is the IANA zone event dates are displayed in.
	Timezone string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SessionConfig controls where role identifiers live. Backend "cookie" keeps them in the
// browser (clientId, vendorId, adminId); "redis" keeps only a session id cookie.
type SessionConfig struct {
	Backend string
	Secret  string
	TTL     time.Duration
	Secure  bool
}

type APIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	CacheTTL     time.Duration
	RenderBudget time.Duration
}

type RealtimeConfig struct {
	URL          string
	Cookie       string
	PollInterval time.Duration
}

type Config struct {
	Server   ServerConfig
	DB       DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	API      APIConfig
	Realtime RealtimeConfig
	Env      string
}

func LoadConfig() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "https://planzo.app")),
			Timezone:    getEnv("TIMEZONE", "UTC"),
		},
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "planzo"),
			Password: getEnv("DB_PASS", "planzo"),
			DBName:   getEnv("DB_NAME", "planzo_web"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Backend: getEnv("SESSION_BACKEND", "cookie"),
			Secret:  getEnv("SESSION_SECRET", "SECRET"),
			TTL:     getEnvDuration("SESSION_TTL", 72*time.Hour),
			Secure:  getEnv("SESSION_SECURE", "false") == "true",
		},
		API: APIConfig{
			BaseURL:      getEnv("API_BASE_URL", "http://localhost:5000/api"),
			Timeout:      getEnvDuration("API_TIMEOUT", 10*time.Second),
			CacheTTL:     getEnvDuration("CACHE_TTL", time.Minute),
			RenderBudget: getEnvDuration("VENDORS_RENDER_BUDGET", 2*time.Second),
		},
		Realtime: RealtimeConfig{
			URL:          getEnv("REALTIME_URL", "http://localhost:5000"),
			Cookie:       getEnv("REALTIME_COOKIE", ""),
			PollInterval: getEnvDuration("REALTIME_POLL_INTERVAL", 5*time.Second),
		},
		Env: getEnv("ENV", "prod"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
