package pages

import (
	"strings"

	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
)

// ValidateTitle validates a page title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apierrors.NewValidationError("title", "", "is required")
	}
	return nil
}
