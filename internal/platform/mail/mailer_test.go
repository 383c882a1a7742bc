package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"memopad/internal/config"
)

func TestSendPasswordResetSkipsWithoutConfig(t *testing.T) {
	t.Parallel()

	// No SMTP host configured: delivery is skipped, not failed.
	m := NewMailer(config.MailConfig{}, nil)
	err := m.SendPasswordReset(context.Background(), "user@example.com", "https://memopad.example.com/reset?token=x")
	assert.NoError(t, err)
}

func TestSendPasswordResetRejectsEmptyRecipient(t *testing.T) {
	t.Parallel()

	m := NewMailer(config.MailConfig{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
		FromEmail: "noreply@memopad.example.com",
	}, nil)
	err := m.SendPasswordReset(context.Background(), "  ", "https://memopad.example.com/reset?token=x")
	assert.Error(t, err)
}
