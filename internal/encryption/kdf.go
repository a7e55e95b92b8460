package encryption

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the derived AES-256 key length.
	KeySize = 32
	// SaltSize is the per-file PBKDF2 salt length.
	SaltSize = 16
)

// DeriveKey stretches the UTF-8 password into a KeySize-byte key using
// PBKDF2-HMAC-SHA256. Deterministic: identical (password, salt, iterations)
// always yield identical key bytes.
func DeriveKey(password, salt []byte, iterations int) ([]byte, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrIterations, iterations)
	}

	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d", ErrSaltSize, len(salt))
	}

	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New), nil
}
