package encryption

import (
	"bufio"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
)

// EncryptStream writes the 32-byte header followed by the AES-256-CBC
// ciphertext of r to w, padding the final block PKCS#7-style. The caller
// supplies a fresh header; its IV seeds the chaining mode and its salt is
// emitted verbatim for the key derivation of any future decrypt tooling.
func EncryptStream(r io.Reader, w io.Writer, key []byte, header *Header) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: got %d", ErrKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("creating cipher: %w", err)
	}

	if _, err := header.WriteTo(w); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	return encryptCBC(block, header.IV[:], r, w)
}

// encryptCBC streams r through the cipher in CBC mode, writing ciphertext
// incrementally to w. Memory use is bounded by the shared buffer pool,
// independent of input size.
func encryptCBC(block cipher.Block, iv []byte, r io.Reader, w io.Writer) error {
	cbcMode := cipher.NewCBCEncrypter(block, iv)
	bufReader := bufio.NewReaderSize(r, defaultBufferSize)

	buf := bufferPool.Get().([]byte)
	defer bufferPool.Put(buf) //nolint:staticcheck // pool of slices

	blockBuf := make([]byte, 0, 2*aes.BlockSize)
	isEOF := false

	// Process the input in chunks
	for !isEOF {
		n, err := bufReader.Read(buf)
		if n > 0 {
			blockBuf = append(blockBuf, buf[:n]...)
		}

		if err == io.EOF {
			isEOF = true
		} else if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		// Process complete blocks, keeping the last block back for padding
		for len(blockBuf) >= aes.BlockSize {
			if isEOF && len(blockBuf) == aes.BlockSize {
				break
			}

			ciphertext := make([]byte, aes.BlockSize)
			cbcMode.CryptBlocks(ciphertext, blockBuf[:aes.BlockSize])

			if _, err := w.Write(ciphertext); err != nil {
				return fmt.Errorf("writing encrypted block: %w", err)
			}

			blockBuf = blockBuf[aes.BlockSize:]
		}

		// Handle the final block with padding once EOF is reached
		if isEOF {
			padded := pkcs7Pad(blockBuf, aes.BlockSize)
			ciphertext := make([]byte, len(padded))
			cbcMode.CryptBlocks(ciphertext, padded)

			if _, err := w.Write(ciphertext); err != nil {
				return fmt.Errorf("writing final encrypted block: %w", err)
			}

			break
		}
	}

	return nil
}
