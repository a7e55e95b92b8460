package encryption

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

const (
	ownerReadWrite = 0o600
	ownerDirPerm   = 0o700
)

// Processor derives one fresh key per file and runs the streaming cipher.
// A single Processor serves a whole run; all per-file state (salt, IV, key)
// is local to each call.
type Processor struct {
	password   []byte
	iterations int
	checksum   bool
}

// NewProcessor validates the key-derivation parameters once, up front.
// A bad iteration count is a configuration error, not a per-file error.
func NewProcessor(password string, iterations int, checksum bool) (*Processor, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrIterations, iterations)
	}

	return &Processor{
		password:   []byte(password),
		iterations: iterations,
		checksum:   checksum,
	}, nil
}

// Encrypt generates a fresh salt/IV pair, derives the key, and streams r
// through the cipher into w. Returns the hex BLAKE3 digest of the plaintext
// when checksumming is enabled.
func (p *Processor) Encrypt(r io.Reader, w io.Writer) (checksum string, err error) {
	header, err := NewHeader()
	if err != nil {
		return "", err
	}

	key, err := DeriveKey(p.password, header.Salt[:], p.iterations)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	var hasher *blake3.Hasher

	if p.checksum {
		hasher = blake3.New()
		r = io.TeeReader(r, hasher)
	}

	if err := EncryptStream(r, w, key, header); err != nil {
		return "", err
	}

	if hasher != nil {
		checksum = hex.EncodeToString(hasher.Sum(nil))
	}

	return checksum, nil
}

// EncryptFile encrypts src into dst, creating dst's parent directories on
// demand. On failure a partially written dst may remain on disk; it is not
// rolled back, so callers must treat outputs without a matching OK log
// record as suspect.
func (p *Processor) EncryptFile(src, dst string) Result {
	result := Result{Input: src, Output: dst}

	inFile, err := os.Open(filepath.Clean(src))
	if err != nil {
		result.Error = fmt.Errorf("opening input file: %w", err)

		return result
	}
	defer inFile.Close()

	if err := os.MkdirAll(filepath.Dir(dst), ownerDirPerm); err != nil {
		result.Error = fmt.Errorf("creating output directory: %w", err)

		return result
	}

	outFile, err := os.OpenFile(filepath.Clean(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, ownerReadWrite)
	if err != nil {
		result.Error = fmt.Errorf("creating output file: %w", err)

		return result
	}

	checksum, err := p.Encrypt(inFile, outFile)
	if err != nil {
		outFile.Close()

		result.Error = fmt.Errorf("encrypting file: %w", err)

		return result
	}

	if err := outFile.Close(); err != nil {
		result.Error = fmt.Errorf("closing output file: %w", err)

		return result
	}

	info, err := os.Stat(dst)
	if err != nil {
		result.Error = fmt.Errorf("stat output %q: %w", dst, err)

		return result
	}

	result.OutputSize = info.Size()
	result.Checksum = checksum

	return result
}
