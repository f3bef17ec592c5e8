package main

import (
	"context"
	"fmt"
	"os"

	"followup_assistant/internal/app"
	"followup_assistant/internal/infra/config"
	"followup_assistant/internal/infra/email"
	"followup_assistant/internal/infra/logger"
	"followup_assistant/internal/infra/sheets"
	"followup_assistant/internal/infra/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. Threshold: %d day(s), digest: %v, telegram: %v",
		cfg.ThresholdDays, cfg.Digest, cfg.TelegramEnabled())

	ctx := context.Background()

	// Initialize the sheet-backed application repository
	repo, err := sheets.NewApplicationRepository(
		ctx, []byte(cfg.GoogleCredentialsJSON), cfg.SpreadsheetID, cfg.SheetRange, log)
	if err != nil {
		log.Fatalf("FATAL: Could not set up Google Sheets client: %v", err)
	}
	log.Info("Google Sheets client initialized.")

	// Initialize notification channels
	notifiers := []app.Notifier{
		email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailAddress, cfg.AppPassword),
	}
	if cfg.TelegramEnabled() {
		tg, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			// Telegram is a best-effort mirror; email still goes out.
			log.Errorf("Telegram notifier unavailable, continuing with email only: %v", err)
		} else {
			notifiers = append(notifiers, tg)
			log.Info("Telegram notifier initialized.")
		}
	}

	service := app.NewReminderService(repo, notifiers, cfg.ThresholdDays, cfg.Digest, log)
	if err := service.Run(ctx); err != nil {
		log.Fatalf("FATAL: Reminder run failed: %v", err)
	}
	log.Info("Reminder run finished.")
}
