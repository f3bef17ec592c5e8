package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultSheetRange    = "Sheet1"
	defaultSMTPHost      = "smtp.gmail.com"
	defaultSMTPPort      = 465
	defaultThresholdDays = 7
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	GoogleCredentialsJSON string // Service account credentials, raw JSON
	SpreadsheetID         string
	SheetRange            string
	EmailAddress          string // Sender and recipient are the same mailbox
	AppPassword           string
	SMTPHost              string
	SMTPPort              int
	ThresholdDays         int  // Days since last contact before a follow-up is due
	Digest                bool // One summary email instead of one per application
	TelegramToken         string
	TelegramChatID        int64
	LogLevel              string
	Environment           string
}

// TelegramEnabled reports whether the optional Telegram channel is configured.
func (c *AppConfig) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.GoogleCredentialsJSON = os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")
	if cfg.GoogleCredentialsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is not set")
	}

	cfg.SpreadsheetID = os.Getenv("SPREADSHEET_ID")
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is not set")
	}

	cfg.SheetRange = os.Getenv("SHEET_RANGE")
	if cfg.SheetRange == "" {
		cfg.SheetRange = defaultSheetRange
	}

	cfg.EmailAddress = os.Getenv("EMAIL_ADDRESS")
	if cfg.EmailAddress == "" {
		return nil, fmt.Errorf("EMAIL_ADDRESS is not set")
	}

	cfg.AppPassword = os.Getenv("APP_PASSWORD")
	if cfg.AppPassword == "" {
		return nil, fmt.Errorf("APP_PASSWORD is not set")
	}

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = defaultSMTPHost
	}

	cfg.SMTPPort = defaultSMTPPort
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		cfg.SMTPPort, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
	}

	cfg.ThresholdDays = defaultThresholdDays
	if thresholdStr := os.Getenv("FOLLOWUP_THRESHOLD_DAYS"); thresholdStr != "" {
		cfg.ThresholdDays, err = strconv.Atoi(thresholdStr)
		if err != nil {
			return nil, fmt.Errorf("invalid FOLLOWUP_THRESHOLD_DAYS: %w", err)
		}
	}
	if cfg.ThresholdDays <= 0 {
		return nil, fmt.Errorf("FOLLOWUP_THRESHOLD_DAYS must be positive, got %d", cfg.ThresholdDays)
	}

	if digestStr := os.Getenv("REMINDER_DIGEST"); digestStr != "" {
		cfg.Digest, err = strconv.ParseBool(digestStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_DIGEST: %w", err)
		}
	}

	// Telegram is optional; both variables must be present to enable it.
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is set but TELEGRAM_CHAT_ID is not")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}
