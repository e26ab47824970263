package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Env          string
	Port         string
	LogLevel     string
	DBURL        string
	RedisAddress string
	BearerToken  string
	ClinicName   string

	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	ShareTokenKey []byte
	ShareTokenTTL time.Duration
	PublicBaseURL string

	SMTP SMTPConfig
}

// SMTPConfig describes the outgoing mail server. Mail is disabled when Host is empty.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled reports whether outgoing mail is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads the configuration from environment variables. A .env file in the
// working directory is loaded first when present; real environment variables win.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	bearerToken := os.Getenv("BEARER_TOKEN")
	if bearerToken == "" {
		return nil, errors.New("missing BEARER_TOKEN environment variable")
	}

	shareKey := os.Getenv("SHARE_TOKEN_KEY")
	if len(shareKey) != 32 {
		return nil, fmt.Errorf("SHARE_TOKEN_KEY must be 32 bytes long, got %d", len(shareKey))
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS value: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST value: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("SHARE_TOKEN_TTL", "72h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHARE_TOKEN_TTL value: %w", err)
	}

	smtpUser := os.Getenv("SMTP_USER")
	return &AppConfig{
		Env:            getEnv("ENV", "production"),
		Port:           getEnv("PORT", "4000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBURL:          dbURL,
		RedisAddress:   redisAddress,
		BearerToken:    bearerToken,
		ClinicName:     getEnv("CLINIC_NAME", "ClinicDesk"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
		ShareTokenKey:  []byte(shareKey),
		ShareTokenTTL:  ttl,
		PublicBaseURL:  strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:4000"), "/"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			User:     smtpUser,
			Password: os.Getenv("SMTP_PASS"),
			From:     getEnv("SMTP_FROM", smtpUser),
		},
	}, nil
}

func getEnv(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
