package mocks

import (
	"context"
	"sync"
)

// SentReset records one delivered password-reset notification.
type SentReset struct {
	Email string
	Link  string
}

// MockNotifier implements service.Notifier and records every notification so
// tests can assert on delivery (or simulate failures via SendErr).
type MockNotifier struct {
	SendPasswordResetFn func(ctx context.Context, email, resetLink string) error
	SendErr             error

	mu   sync.Mutex
	Sent []SentReset
}

// SendPasswordReset implements the Notifier interface.
func (m *MockNotifier) SendPasswordReset(ctx context.Context, email, resetLink string) error {
	if m.SendPasswordResetFn != nil {
		return m.SendPasswordResetFn(ctx, email, resetLink)
	}
	if m.SendErr != nil {
		return m.SendErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentReset{Email: email, Link: resetLink})
	return nil
}

// LastSent returns the most recent recorded notification, or nil.
func (m *MockNotifier) LastSent() *SentReset {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return nil
	}
	last := m.Sent[len(m.Sent)-1]
	return &last
}
