package email

import (
	"fmt"
	"strings"

	"followup_assistant/internal/app"

	"gopkg.in/gomail.v2"
)

const senderName = "Job Application Follow-Up Assistant"

// Sender delivers follow-up reminders over SMTP. The reminder goes from the
// configured mailbox back to itself; the email is a nudge to the user, not a
// message to the recruiter.
type Sender struct {
	dialer  *gomail.Dialer
	address string
}

func NewSender(host string, port int, address, password string) *Sender {
	d := gomail.NewDialer(host, port, address, password)
	d.SSL = port == 465 // Implicit TLS; STARTTLS is negotiated automatically on other ports
	return &Sender{dialer: d, address: address}
}

func (s *Sender) Name() string { return "email" }

// Send delivers one reminder email for a single due application.
func (s *Sender) Send(rem app.Reminder) error {
	m := s.newMessage(subject(rem), body(s.address, rem))
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("delivering reminder email: %w", err)
	}
	return nil
}

// SendDigest delivers a single email summarizing every due application.
func (s *Sender) SendDigest(rems []app.Reminder) error {
	m := s.newMessage(
		fmt.Sprintf("Follow-Up Reminder: %d Job Application(s) Need Attention", len(rems)),
		digestBody(s.address, rems),
	)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("delivering digest email: %w", err)
	}
	return nil
}

func (s *Sender) newMessage(subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.address, senderName)
	m.SetHeader("To", s.address)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return m
}

func subject(rem app.Reminder) string {
	a := rem.Application
	return fmt.Sprintf("Follow-Up Reminder: Job Application Status of %s, %s", a.Role, a.Company)
}

func body(address string, rem app.Reminder) string {
	a := rem.Application
	return fmt.Sprintf(`Hey %s,

Hoping all is well! It's been %d days since you last contacted %s. Please
follow up with them on the status of your application for %s at %s.

Thanks,
Your Faithful Follow-Up Assistant
`, address, rem.Days, a.Contact(), a.Role, a.Company)
}

func digestBody(address string, rems []app.Reminder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hey %s,\n\nHoping all is well! The following applications are waiting on a follow-up:\n\n", address)
	for _, rem := range rems {
		a := rem.Application
		fmt.Fprintf(&b, "  - %s at %s: %d days since you last contacted %s\n", a.Role, a.Company, rem.Days, a.Contact())
	}
	b.WriteString("\nThanks,\nYour Faithful Follow-Up Assistant\n")
	return b.String()
}
