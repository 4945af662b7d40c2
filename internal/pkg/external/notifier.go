package external

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// DefaultNotifyTimeout bounds one outbound notification.
const DefaultNotifyTimeout = 5 * time.Second

// SMTPConfig holds configuration for the SMTP-backed notifier.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPNotifier delivers notifications over SMTP. When no credentials are
// configured it logs the message instead of sending, so development
// environments work without a mail server.
type SMTPNotifier struct {
	config  SMTPConfig
	timeout time.Duration
	logger  zerolog.Logger
}

// NewSMTPNotifier creates a new SMTPNotifier.
func NewSMTPNotifier(config SMTPConfig, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		config:  config,
		timeout: DefaultNotifyTimeout,
		logger:  logger,
	}
}

// Notify sends one message. The dial and the whole SMTP conversation
// share a fixed wall-clock budget.
func (s *SMTPNotifier) Notify(ctx context.Context, to, subject, body string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP credentials not configured - notification logged, not sent")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err := client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("SMTP MAIL failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("SMTP RCPT failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA failed: %w", err)
	}

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.config.FromName, s.config.FromEmail, to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	if err := client.Quit(); err != nil {
		s.logger.Warn().Err(err).Msg("SMTP QUIT failed after successful send")
	}

	s.logger.Info().Str("to", to).Str("subject", subject).Msg("Notification sent")
	return nil
}
