package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerExtList adds a custom validator ensuring extension lists contain
// only bare extensions, not paths or glob patterns.
func registerExtList(validate *validator.Validate) error {
	if err := validate.RegisterValidation("extlist", validateExtList); err != nil {
		return fmt.Errorf("registering extlist validation: %w", err)
	}

	return nil
}

// validateExtList checks every member of a string slice for path separators
// and glob metacharacters. The lone wildcard sentinel "*" is allowed.
func validateExtList(fl validator.FieldLevel) bool {
	exts, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)

		if ext == "*" {
			continue
		}

		if strings.ContainsAny(ext, `/\*?[`) {
			return false
		}
	}

	return true
}
