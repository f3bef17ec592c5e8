package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", `{"type":"service_account"}`)
	t.Setenv("SPREADSHEET_ID", "sheet-id-123")
	t.Setenv("EMAIL_ADDRESS", "me@example.com")
	t.Setenv("APP_PASSWORD", "app-password")
}

func TestLoad_DefaultsApplied(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", cfg.SheetRange)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, 7, cfg.ThresholdDays)
	assert.False(t, cfg.Digest)
	assert.False(t, cfg.TelegramEnabled())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	required := []string{"GOOGLE_SERVICE_ACCOUNT_JSON", "SPREADSHEET_ID", "EMAIL_ADDRESS", "APP_PASSWORD"}
	for _, missing := range required {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SHEET_RANGE", "Applications!A:H")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("FOLLOWUP_THRESHOLD_DAYS", "14")
	t.Setenv("REMINDER_DIGEST", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Applications!A:H", cfg.SheetRange)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 14, cfg.ThresholdDays)
	assert.True(t, cfg.Digest)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	setRequired(t)

	t.Setenv("FOLLOWUP_THRESHOLD_DAYS", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("FOLLOWUP_THRESHOLD_DAYS", "0")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestLoad_Telegram(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "987654")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.TelegramEnabled())
	assert.Equal(t, int64(987654), cfg.TelegramChatID)
}

func TestLoad_TelegramTokenWithoutChatID(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
}
