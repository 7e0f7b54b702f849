package search

import (
	"fmt"
	"strconv"
	"strings"

	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
)

// ValidateQuery validates a search query.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return apierrors.NewValidationError("query", "", "is required")
	}
	return nil
}

// ResolveLimit checks a result limit against the endpoint maximum. Zero means
// unset and resolves to DefaultLimit.
func ResolveLimit(limit, max int) (int, error) {
	if limit == 0 {
		return DefaultLimit, nil
	}
	if limit < 1 || limit > max {
		return 0, apierrors.NewValidationError("limit", strconv.Itoa(limit),
			fmt.Sprintf("must be between 1 and %d", max))
	}
	return limit, nil
}
