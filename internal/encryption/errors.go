package encryption

import "errors"

var (
	// ErrEmptyData is returned when attempting to process empty input data.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrKeySize is returned when the key is not exactly KeySize bytes.
	ErrKeySize = errors.New("key must be 32 bytes")
	// ErrIterations is returned for a non-positive iteration count.
	// This is a configuration error, never a per-file error.
	ErrIterations = errors.New("iteration count must be positive")
	// ErrSaltSize is returned when the salt is not exactly SaltSize bytes.
	ErrSaltSize = errors.New("salt must be 16 bytes")
)
