package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/abgdnv/storefront/pkg/config"
	gomail "github.com/wneessen/go-mail"
)

// SMTPMailer delivers contact messages over a direct SMTP connection.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer for the configured SMTP server.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers the contact message to the shop owner's mailbox. The visitor's
// address goes into Reply-To so the owner can answer directly.
func (m *SMTPMailer) Send(ctx context.Context, msg MessageDto) error {
	mail := gomail.NewMsg()
	if err := mail.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := mail.To(m.cfg.ToEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	if err := mail.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("smtp reply-to: %w", err)
	}
	mail.Subject(fmt.Sprintf("Contact form: %s", msg.Name))
	mail.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, mail); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
