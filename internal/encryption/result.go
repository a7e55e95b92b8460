package encryption

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Output file size in bytes
	OutputSize int64

	// Checksum is the hex-encoded BLAKE3 digest of the plaintext,
	// empty when checksumming is disabled
	Checksum string

	// Any error that occurred during processing
	Error error
}
