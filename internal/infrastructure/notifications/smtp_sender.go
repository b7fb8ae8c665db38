package notifications

import (
	"context"
	"crypto/tls"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/providers"
	"github.com/zatekoja/bookingengine/pkg/config"
	apperrors "github.com/zatekoja/bookingengine/pkg/errors"
)

// SMTPSender sends HTML email through an SMTP relay.
// The connection is upgraded with STARTTLS only when the server offers it.
// Against a relay without STARTTLS and with no credentials configured,
// mail is delivered in plaintext.
type SMTPSender struct {
	dialer *gomail.Dialer
	sender string
}

// NewSMTPSender creates a sender for the given transport configuration
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	dialer := &gomail.Dialer{
		Host:      cfg.Host,
		Port:      cfg.Port,
		TLSConfig: &tls.Config{ServerName: cfg.Host},
	}
	// Authenticate only when both credentials are present
	if cfg.User != "" && cfg.Password != "" {
		dialer.Username = cfg.User
		dialer.Password = cfg.Password
	}

	return &SMTPSender{
		dialer: dialer,
		sender: cfg.Sender,
	}
}

// NewEmailSender returns an SMTP sender when a host is configured and a
// logging no-op sender otherwise
func NewEmailSender(cfg config.SMTPConfig) providers.EmailSender {
	if !cfg.Configured() {
		log.Info().Msg("SMTP_HOST not set, booking emails will only be logged")
		return NewLogSender()
	}
	return NewSMTPSender(cfg)
}

// Send delivers the notification
func (s *SMTPSender) Send(ctx context.Context, notification *entities.EmailNotification) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewTransportError("email send cancelled", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.sender)
	msg.SetHeader("To", notification.To)
	msg.SetHeader("Subject", notification.Subject)
	msg.SetBody("text/html", notification.Body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return apperrors.NewTransportError("failed to send email", err)
	}
	return nil
}

// LogSender writes notifications to the log instead of delivering them
type LogSender struct {
	logger *zerolog.Logger
}

// NewLogSender creates a new log-only sender on the global logger
func NewLogSender() *LogSender {
	return &LogSender{logger: &log.Logger}
}

// Send logs the full message and reports success
func (s *LogSender) Send(_ context.Context, notification *entities.EmailNotification) error {
	s.logger.Info().
		Str("to", notification.To).
		Str("subject", notification.Subject).
		Str("type", string(notification.Type)).
		Str("body", notification.Body).
		Msg("Email not sent (SMTP not configured)")
	return nil
}
