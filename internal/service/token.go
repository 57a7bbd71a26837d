package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// randomToken returns a URL-safe opaque token with 256 bits of entropy,
// used for password reset and demo session capabilities.
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
