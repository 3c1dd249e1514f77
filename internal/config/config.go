package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	AllowedOrigin   string
	ShutdownTimeout time.Duration
}

// Load читает конфигурацию из окружения. Если рядом лежит .env, он
// подгружается первым, но реальные переменные окружения важнее.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", "sqlite://./database.db"),
		AllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "http://127.0.0.1:5500"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
