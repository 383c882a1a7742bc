// Package mail delivers outbound notification email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"

	"memopad/internal/config"
)

// Mailer sends notification mail. When SMTP is not configured the Mailer
// logs and skips delivery instead of failing, so local setups work without
// a mail sandbox.
type Mailer struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

// NewMailer creates a new SMTP mailer.
func NewMailer(cfg config.MailConfig, log *slog.Logger) *Mailer {
	if log == nil {
		log = slog.Default()
	}
	return &Mailer{
		cfg:    cfg,
		logger: log.With(slog.String("component", "mailer")),
	}
}

// SendPasswordReset emails a password-reset link. The link expires; the body
// says so rather than the subject, to keep the subject stable for filtering.
func (m *Mailer) SendPasswordReset(ctx context.Context, email, resetLink string) error {
	if m.cfg.SMTPHost == "" || m.cfg.FromEmail == "" {
		m.logger.Warn("mail config missing, skip password reset mail")
		return nil
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("empty recipient")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromEmail)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password reset instructions")

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 0 auto; padding: 16px;">
    <p>Use the link below to reset your password:</p>
    <p><a href="%s">%s</a></p>
    <p>The link is valid for 1 hour. If you did not request a reset, you can ignore this mail.</p>
  </div>
</body>
</html>`, resetLink, resetLink)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send password reset mail: %w", err)
	}

	m.logger.Info("password reset mail sent")
	return nil
}
