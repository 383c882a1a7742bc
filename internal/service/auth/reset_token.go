package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes is the entropy of a password-reset token. 32 bytes renders
// as a 64-character hex string.
const resetTokenBytes = 32

// GenerateResetToken returns a new high-entropy opaque password-reset token.
func GenerateResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
