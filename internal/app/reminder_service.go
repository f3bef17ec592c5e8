package app

import (
	"context"
	"fmt"
	"time"

	"followup_assistant/internal/domain/application"
	"followup_assistant/internal/domain/reminder"

	"github.com/sirupsen/logrus"
)

// Reminder pairs a due application with the evaluation that made it due.
type Reminder struct {
	Application *application.Application
	Days        int // Days since last contact at evaluation time
}

// Notifier delivers follow-up reminders over one channel (email, Telegram).
// Implementations live in internal/infra; this keeps the run logic decoupled
// from the delivery libraries.
type Notifier interface {
	// Name identifies the channel in logs.
	Name() string
	// Send delivers a single reminder.
	Send(rem Reminder) error
	// SendDigest delivers one message summarizing all due reminders.
	SendDigest(rems []Reminder) error
}

// ReminderService runs one fetch-evaluate-notify pass over the tracked
// applications. It is built once per process invocation and run once; the
// external cron schedule provides periodicity.
type ReminderService struct {
	repo          application.Repository
	notifiers     []Notifier
	thresholdDays int
	digest        bool
	logger        *logrus.Logger
	now           func() time.Time
}

func NewReminderService(
	repo application.Repository,
	notifiers []Notifier,
	thresholdDays int,
	digest bool,
	logger *logrus.Logger,
) *ReminderService {
	return &ReminderService{
		repo:          repo,
		notifiers:     notifiers,
		thresholdDays: thresholdDays,
		digest:        digest,
		logger:        logger,
		now:           time.Now,
	}
}

// Run executes one complete pass. It returns an error only when the
// applications cannot be fetched at all; individual delivery failures are
// logged and skipped so one bad send never blocks the rest of the run.
func (s *ReminderService) Run(ctx context.Context) error {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("fetching applications: %w", err)
	}
	s.logger.Infof("Fetched %d application(s) from the sheet.", len(apps))

	today := s.now()
	var due []Reminder
	for _, a := range apps {
		d := reminder.Evaluate(a, today, s.thresholdDays)
		if !d.Due {
			s.logger.Debugf("Row %d (%s, %s) not due: %s", a.Row, a.Role, a.Company, d.Reason)
			continue
		}
		s.logger.Infof("Row %d (%s, %s) due for follow-up: %s", a.Row, a.Role, a.Company, d.Reason)
		due = append(due, Reminder{Application: a, Days: d.Days})
	}

	if len(due) == 0 {
		s.logger.Info("No applications due for follow-up. Nothing to send.")
		return nil
	}

	sent, failed := s.notify(due)
	s.logger.WithFields(logrus.Fields{
		"applications": len(apps),
		"due":          len(due),
		"sent":         sent,
		"failed":       failed,
	}).Info("Reminder run complete.")
	return nil
}

// notify fans the due reminders out to every configured channel and returns
// sent/failed counts. Exactly one delivery attempt is made per reminder per
// channel (or one digest per channel); failures are logged and skipped.
func (s *ReminderService) notify(due []Reminder) (sent, failed int) {
	for _, n := range s.notifiers {
		if s.digest {
			if err := n.SendDigest(due); err != nil {
				s.logger.Errorf("Failed to send digest via %s: %v", n.Name(), err)
				failed++
				continue
			}
			s.logger.Infof("Sent digest of %d reminder(s) via %s.", len(due), n.Name())
			sent++
			continue
		}

		for _, rem := range due {
			if err := n.Send(rem); err != nil {
				s.logger.Errorf("Failed to send reminder for row %d (%s, %s) via %s: %v",
					rem.Application.Row, rem.Application.Role, rem.Application.Company, n.Name(), err)
				failed++
				continue
			}
			sent++
		}
	}
	return sent, failed
}
