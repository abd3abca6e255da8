package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel    string
	CORSOrigins string
}

var ErrMissingSecret = errors.New("JWT_SECRET is required")

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid duration %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid int %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid float %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "devconnector"),
		Port:     getEnv("PORT", "5000"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getEnvDuration("JWT_TTL", 120*time.Hour),

		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 30),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}
