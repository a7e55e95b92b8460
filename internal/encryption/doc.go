// Package encryption provides password-based file encryption using AES-256 CBC.
// Each output file starts with a fixed 32-byte header (16-byte PBKDF2 salt
// followed by the 16-byte IV) and streams ciphertext with bounded memory.
package encryption
