package broadcast

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Notifier is the outbound notification capability. One implementation per
// transport; each returns an error only when the send definitively failed.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, to, body string) error
	SendPush(ctx context.Context, token, title, body string) error
}

// mockNotifier logs and reports success, matching the behavior of the system
// when no SMTP/Twilio/VAPID credentials are configured.
type mockNotifier struct{}

func NewMockNotifier() Notifier { return &mockNotifier{} }

func (mockNotifier) SendEmail(_ context.Context, to, subject, _ string) error {
	log.Printf("[broadcast] MOCK email to=%s subject=%q", to, subject)
	return nil
}

func (mockNotifier) SendSMS(_ context.Context, to, body string) error {
	log.Printf("[broadcast] MOCK sms to=%s len=%d", to, len(body))
	return nil
}

func (mockNotifier) SendPush(_ context.Context, token, title, _ string) error {
	log.Printf("[broadcast] MOCK push token=%s title=%q", token, title)
	return nil
}

// NotifierConfig carries transport credentials. Empty fields downgrade the
// matching channel to the mock transport.
type NotifierConfig struct {
	SMTPHost   string // host:port
	SMTPFrom   string
	TwilioSID  string
	TwilioFrom string
}

// NewNotifier returns an SMTP-backed notifier when a host is configured,
// otherwise the mock. SMS and push stay mocked until a provider is wired up.
func NewNotifier(cfg NotifierConfig) Notifier {
	if cfg.TwilioSID != "" {
		log.Printf("[broadcast] twilio credentials set but no sms provider is built in, sms uses mock")
	}
	if cfg.SMTPHost == "" {
		return NewMockNotifier()
	}
	return &smtpNotifier{host: cfg.SMTPHost, from: cfg.SMTPFrom}
}

type smtpNotifier struct {
	host string
	from string
}

func (n *smtpNotifier) SendEmail(_ context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + n.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")
	if err := smtp.SendMail(n.host, nil, n.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (n *smtpNotifier) SendSMS(ctx context.Context, to, body string) error {
	return mockNotifier{}.SendSMS(ctx, to, body)
}

func (n *smtpNotifier) SendPush(ctx context.Context, token, title, body string) error {
	return mockNotifier{}.SendPush(ctx, token, title, body)
}
