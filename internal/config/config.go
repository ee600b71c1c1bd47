// Package config собирает конфигурацию сервера из флагов и переменных
// окружения. Значение флага имеет приоритет, затем окружение, затем дефолт.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Env prefix для всех переменных окружения сервера
const envPrefix = "STUDYBUDDY_"

// Config содержит конфигурацию сервера
type Config struct {
	ShowVersion    bool          // показать версию и выйти
	ListenAddr     string        // адрес HTTP сервера
	DBPath         string        // путь к файлу SQLite
	JWTSecret      string        // секрет для подписи access токенов
	AccessTokenTTL time.Duration // время жизни access токена
	AIBaseURL      string        // базовый URL generative-AI провайдера
	AIModel        string        // идентификатор модели
	AIAPIKey       string        // API ключ провайдера
	LogLevel       string        // debug | info | warn | error
	RateLimit      int           // запросов на IP в окно RateWindow
	RateWindow     time.Duration // окно rate limiter'а
}

// Load парсит флаги командной строки и окружение
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("studybuddy-server", flag.ContinueOnError)
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.ListenAddr, "addr", envOr("ADDR", ":8080"), "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", envOr("DB_PATH", "users.db"), "Path to SQLite database file")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", envOr("JWT_SECRET", ""), "Secret for signing access tokens")
	fs.DurationVar(&cfg.AccessTokenTTL, "token-ttl", envDurationOr("TOKEN_TTL", 24*time.Hour), "Access token TTL")
	fs.StringVar(&cfg.AIBaseURL, "ai-url", envOr("AI_URL", "https://generativelanguage.googleapis.com"), "Generative AI provider base URL")
	fs.StringVar(&cfg.AIModel, "ai-model", envOr("AI_MODEL", "gemini-1.5-pro"), "Generative AI model")
	fs.StringVar(&cfg.AIAPIKey, "ai-key", envOr("AI_KEY", ""), "Generative AI API key")
	fs.StringVar(&cfg.LogLevel, "log-level", envOr("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	fs.IntVar(&cfg.RateLimit, "rate-limit", 100, "Max requests per IP per window")
	fs.DurationVar(&cfg.RateWindow, "rate-window", time.Minute, "Rate limiter window")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if !cfg.ShowVersion && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required (set -jwt-secret or %sJWT_SECRET)", envPrefix)
	}

	return cfg, nil
}

// envOr возвращает значение переменной окружения или дефолт
func envOr(key, fallback string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return fallback
}

// envDurationOr возвращает duration из окружения или дефолт
// Невалидное значение молча игнорируется в пользу дефолта
func envDurationOr(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
