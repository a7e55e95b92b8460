package commands

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptPassword reads the password twice from the terminal without echo.
// Refuses to read from a pipe so the password never transits argv history
// by accident; non-interactive callers use --password or LOCKWALK_PASSWORD.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; provide --password or LOCKWALK_PASSWORD")
	}

	fmt.Fprint(os.Stderr, "Enter password: ")

	first, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	if len(first) == 0 {
		return "", errors.New("empty password is not allowed")
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")

	second, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading password confirmation: %w", err)
	}

	if len(first) != len(second) || subtle.ConstantTimeCompare(first, second) != 1 {
		return "", errors.New("passwords do not match")
	}

	return string(first), nil
}
