package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	SessionTTL  time.Duration
	DraftTTL    time.Duration

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost string
	MailPort int
	MailUser string
	MailPass string

	// NotifyEmail is the review inbox that receives new-lead notifications.
	NotifyEmail string

	CORSOrigin string
}

// Load reads configuration from environment variables, with a .env file as
// fallback for local runs.
func Load() (*Config, error) {
	godotenv.Load()

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return nil, errors.New("SESSION_TTL must be a valid duration")
	}
	draftTTL, err := time.ParseDuration(getEnv("DRAFT_TTL", "1h"))
	if err != nil {
		return nil, errors.New("DRAFT_TTL must be a valid duration")
	}
	mailPort, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		return nil, errors.New("MAIL_PORT must be a number")
	}

	config := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SessionTTL:  sessionTTL,
		DraftTTL:    draftTTL,

		RabbitUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		MailHost: os.Getenv("MAIL_HOST"),
		MailPort: mailPort,
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),

		NotifyEmail: getEnv("NOTIFY_EMAIL", "leads@aishnar.digital"),

		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	if config.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	if config.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
