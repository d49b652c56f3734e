package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

const (
	MinKeyLength = 16
	MaxKeyLength = 128
	KeyPrefix    = "idempotency"
)

var (
	ErrKeyTooShort = errors.New("idempotency key must be at least 16 characters")
	ErrKeyTooLong  = errors.New("idempotency key must not exceed 128 characters")
	ErrKeyInvalid  = errors.New("idempotency key contains invalid characters")
)

// Validate reports whether key is usable as a client-supplied
// idempotency key: bounded length, letters, digits, dash and underscore.
func Validate(key string) error {
	switch {
	case len(key) < MinKeyLength:
		return ErrKeyTooShort
	case len(key) > MaxKeyLength:
		return ErrKeyTooLong
	}

	for i := 0; i < len(key); i++ {
		if !isKeyChar(key[i]) {
			return ErrKeyInvalid
		}
	}

	return nil
}

func isKeyChar(c byte) bool {
	return c == '-' || c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// BuildCacheKey derives the storage key for a request. The method and
// path are part of the hash so the same client key used against two
// endpoints never collides.
func BuildCacheKey(method, path, idempotencyKey string) string {
	hash := sha256.Sum256([]byte(method + ":" + path + ":" + idempotencyKey))

	return KeyPrefix + ":" + hex.EncodeToString(hash[:])
}
