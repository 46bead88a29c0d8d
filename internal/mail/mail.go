// Package mail sends transactional email. Delivery is best-effort
// everywhere: callers log failures and carry on, because the parent
// operation (ticket creation, OTP issuance) matters more than the
// notification.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"storefront-api/internal/config"

	"github.com/rs/zerolog"
)

// Sender delivers a single email.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// smtpSender delivers via a plain SMTP relay.
type smtpSender struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger zerolog.Logger
}

// NewSMTPSender creates an SMTP-backed sender.
func NewSMTPSender(cfg config.SMTPConfig, logger zerolog.Logger) Sender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from:   cfg.From,
		auth:   auth,
		logger: logger.With().Str("component", "mail").Logger(),
	}
}

// Send delivers one message. The context deadline is not honoured mid-dial;
// net/smtp offers no hook for it.
func (s *smtpSender) Send(_ context.Context, to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		s.logger.Error().Err(err).Str("to", to).Msg("failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

// logSender logs messages instead of delivering them. Used when SMTP is not
// configured, e.g. in development.
type logSender struct {
	logger zerolog.Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(logger zerolog.Logger) Sender {
	return &logSender{
		logger: logger.With().Str("component", "mail").Logger(),
	}
}

func (s *logSender) Send(_ context.Context, to, subject, body string) error {
	s.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("SMTP disabled, logging email instead of sending")
	return nil
}
