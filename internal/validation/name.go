package validation

import (
	"strings"

	"github.com/galleria-app/galleria/internal/apperr"
)

// ValidateName validates a character name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return apperr.Validation("Name is required")
	}

	if len(trimmed) > 100 {
		return apperr.Validation("Name is too long (max 100 characters)")
	}

	return nil
}
