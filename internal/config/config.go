package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Email delivery
	EmailProvider     string // "sendgrid" (default) or "ses"
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	LeadInboxEmail    string
	EmailTimeout      time.Duration

	// Cloudflare Turnstile. An empty secret disables CAPTCHA enforcement;
	// that is a deployment toggle, not a misconfiguration.
	TurnstileSecretKey string
	TurnstileVerifyURL string
	CaptchaTimeout     time.Duration

	// Per-IP rate limiting on the contact endpoint
	RateLimitRPS   float64
	RateLimitBurst int

	// AWS (only used when EmailProvider is "ses")
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),

		EmailProvider:     strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "sendgrid"))),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "notifications@lyrixdigital.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Lyrix Digital"),
		LeadInboxEmail:    getEnv("LEAD_INBOX_EMAIL", "lyrixdigitals@gmail.com"),
		EmailTimeout:      getEnvAsDuration("EMAIL_TIMEOUT", 10*time.Second),

		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		TurnstileVerifyURL: getEnv("TURNSTILE_VERIFY_URL", ""),
		CaptchaTimeout:     getEnvAsDuration("CAPTCHA_TIMEOUT", 10*time.Second),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 0.5),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 5),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float64 or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
