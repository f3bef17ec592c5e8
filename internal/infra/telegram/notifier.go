package telegram

import (
	"fmt"
	"strings"

	"followup_assistant/internal/app"

	"gopkg.in/telebot.v3"
)

// Notifier mirrors follow-up reminders to a Telegram chat. It is an optional
// secondary channel; email remains the primary one.
type Notifier struct {
	bot    *telebot.Bot
	chatID int64
}

// NewNotifier creates a send-only bot. No poller is configured since the
// assistant never receives messages.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := telebot.NewBot(telebot.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) Name() string { return "telegram" }

func (n *Notifier) Send(rem app.Reminder) error {
	a := rem.Application
	text := fmt.Sprintf("Reminder: follow up with %s about the %s role at %s (%d days since last contact).",
		a.Contact(), a.Role, a.Company, rem.Days)
	return n.send(text)
}

func (n *Notifier) SendDigest(rems []app.Reminder) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d application(s) waiting on a follow-up:\n", len(rems))
	for _, rem := range rems {
		a := rem.Application
		fmt.Fprintf(&b, "\n%s at %s: %d days since last contact with %s", a.Role, a.Company, rem.Days, a.Contact())
	}
	return n.send(b.String())
}

func (n *Notifier) send(text string) error {
	recipient := &telebot.User{ID: n.chatID}
	if _, err := n.bot.Send(recipient, text); err != nil {
		return fmt.Errorf("delivering telegram reminder: %w", err)
	}
	return nil
}
