package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// SMTP Configuration (Gmail submission endpoint)
	SMTPHost       string
	SMTPPort       string
	SenderEmail    string
	SenderPassword string
	RecipientEmail string
	// Display-only contact details shown on the site
	OfficeAddress string
	ContactPhone  string
	ContactEmail  string
	WebsiteURL    string
	// Redis/Upstash Configuration (rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitEnquireThreshold int
	RateLimitGlobalThreshold  int
}

// NotifierConfig is the read-only mail transport configuration, loaded once
// at startup and shared across all sessions.
type NotifierConfig struct {
	Host      string
	Port      string
	Sender    string
	Recipient string
	Password  string
}

// Complete reports whether every field required to dispatch mail is set.
func (nc NotifierConfig) Complete() bool {
	return nc.Host != "" && nc.Port != "" && nc.Sender != "" &&
		nc.Recipient != "" && nc.Password != ""
}

// Notifier returns the typed mail configuration consumed by pkg/email.
// Normalization (quote stripping) already happened in LoadConfig, so the
// returned value is safe to use as-is.
func (c *Config) Notifier() NotifierConfig {
	return NotifierConfig{
		Host:      c.SMTPHost,
		Port:      c.SMTPPort,
		Sender:    c.SenderEmail,
		Recipient: c.RecipientEmail,
		Password:  c.SenderPassword,
	}
}

func LoadConfig() (*Config, error) {
	// Platform-managed secrets (real env vars) take precedence; the .env
	// file only fills keys that are not already set, which is godotenv's
	// default behaviour.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// SMTP Configuration
		SMTPHost:       getEnv("EMAIL_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("EMAIL_PORT", "587"),
		SenderEmail:    getEnv("EMAIL_HOST_USER", ""),
		SenderPassword: stripQuotes(getEnv("EMAIL_HOST_PASSWORD", "")),
		RecipientEmail: getEnv("RECIPIENT_EMAIL", ""),
		// Display contact details with documented defaults
		OfficeAddress: getEnv("OFFICE_ADDRESS", "Solan, By pass road, Near New Bus Stand, Himachal Pradesh"),
		ContactPhone:  getEnv("CONTACT_PHONE", "+91 XXXXXXXXXX"),
		ContactEmail:  getEnv("CONTACT_EMAIL", "contact@example.com"),
		WebsiteURL:    getEnv("WEBSITE_URL", "www.himachallanddeals.com"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitEnquireThreshold: getEnvInt("RATE_LIMIT_ENQUIRE_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if !cfg.Notifier().Complete() {
		log.Println("WARNING: Email configuration is incomplete. Enquiry submission will be unavailable.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// stripQuotes removes one layer of surrounding single or double quotes.
// App passwords pasted into .env files routinely arrive quoted.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
