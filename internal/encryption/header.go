package encryption

import (
	"crypto/aes"
	"crypto/rand"
	"fmt"
	"io"
)

// HeaderSize is the fixed length of the unencrypted output file prefix.
const HeaderSize = SaltSize + aes.BlockSize

// Header is the 32-byte prefix of every output file: a 16-byte PBKDF2 salt
// followed by a 16-byte CBC initialization vector, written verbatim.
// The format carries no magic number, version field, or authentication tag.
type Header struct {
	Salt [SaltSize]byte
	IV   [aes.BlockSize]byte
}

// NewHeader draws a fresh, independent salt and IV from crypto/rand.
// Neither value is ever reused across files or runs.
func NewHeader() (*Header, error) {
	header := &Header{}

	if _, err := io.ReadFull(rand.Reader, header.Salt[:]); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	if _, err := io.ReadFull(rand.Reader, header.IV[:]); err != nil {
		return nil, fmt.Errorf("generating IV: %w", err)
	}

	return header, nil
}

// WriteTo writes the raw salt followed by the raw IV.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.Salt[:])
	if err != nil {
		return int64(n), fmt.Errorf("writing salt: %w", err)
	}

	m, err := w.Write(h.IV[:])
	if err != nil {
		return int64(n + m), fmt.Errorf("writing IV: %w", err)
	}

	return int64(n + m), nil
}

// ReadHeaderFrom parses the 32-byte prefix from r. Only tests and future
// decrypt-compatible tooling need this; the encrypt path never reads it back.
func ReadHeaderFrom(r io.Reader) (*Header, error) {
	header := &Header{}

	if _, err := io.ReadFull(r, header.Salt[:]); err != nil {
		return nil, fmt.Errorf("reading salt: %w", err)
	}

	if _, err := io.ReadFull(r, header.IV[:]); err != nil {
		return nil, fmt.Errorf("reading IV: %w", err)
	}

	return header, nil
}
