package mail

import (
	"context"
	"fmt"
	"log/slog"

	"tavola-api/internal/pkg/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends one transactional email per call through the SendGrid
// API. No retry, no queueing: the admin can simply re-trigger a response if a
// send fails, and the caller treats failures as non-fatal.
type SendGridMailer struct {
	cfg config.MailConfig
}

func NewSendGridMailer(cfg config.MailConfig) *SendGridMailer {
	return &SendGridMailer{cfg: cfg}
}

func (m *SendGridMailer) Send(ctx context.Context, to, toName, subject, plainBody, htmlBody string) error {
	if m.cfg.SendGridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}
	if m.cfg.FromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not configured")
	}

	from := sgmail.NewEmail(m.cfg.FromName, m.cfg.FromEmail)
	recipient := sgmail.NewEmail(toName, to)
	message := sgmail.NewSingleEmail(from, subject, recipient, plainBody, htmlBody)

	client := sendgrid.NewSendClient(m.cfg.SendGridAPIKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	slog.Info("email sent", "to", to, "subject", subject, "status", response.StatusCode)
	return nil
}
