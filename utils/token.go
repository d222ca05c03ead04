package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSessionToken returns 64 random bytes as URL-safe base64. Tokens are
// opaque: no embedded structure, matched byte-for-byte against the stored
// column.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
