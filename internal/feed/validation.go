package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikimedia-mcp-server/internal/wikimedia"
)

// EventTypes are the accepted on-this-day categories.
var EventTypes = map[string]bool{
	"all":      true,
	"selected": true,
	"births":   true,
	"deaths":   true,
	"holidays": true,
	"events":   true,
}

// daysInMonth allows 29 days in February; the on-this-day feed addresses a
// month and day without a year.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidateFeedSite checks that a project/language pair has feed coverage for
// the named feature. Feeds exist only for Wikipedia in a handful of
// languages.
func ValidateFeedSite(feature, project, language string) error {
	if project != wikimedia.DefaultProject {
		return apierrors.NewValidationError("project", project,
			feature+" is only available for wikipedia")
	}
	if !wikimedia.FeedLanguages[language] {
		return apierrors.NewValidationError("language", language,
			fmt.Sprintf("%s is only available for: %s", feature,
				strings.Join(wikimedia.SupportedFeedLanguages(), ", ")))
	}
	return nil
}

// ValidateEventType checks the on-this-day category. Empty resolves to all.
func ValidateEventType(eventType string) (string, error) {
	if eventType == "" {
		return "all", nil
	}
	if !EventTypes[eventType] {
		return "", apierrors.NewValidationError("type", eventType,
			"must be one of: all, births, deaths, events, holidays, selected")
	}
	return eventType, nil
}

// ResolveFeaturedDate validates a YYYY/MM/DD date and returns its
// zero-padded path form. An empty date resolves to now.
func ResolveFeaturedDate(date string, now time.Time) (string, error) {
	if date == "" {
		return now.Format("2006/01/02"), nil
	}

	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "", invalidFeaturedDate(date)
	}
	if len(parts[0]) > 4 || len(parts[1]) > 2 || len(parts[2]) > 2 {
		return "", invalidFeaturedDate(date)
	}
	padded := parts[0] + "/" + zfill(parts[1], 2) + "/" + zfill(parts[2], 2)
	if _, err := time.Parse("2006/01/02", padded); err != nil {
		return "", invalidFeaturedDate(date)
	}
	return padded, nil
}

func invalidFeaturedDate(date string) error {
	return apierrors.NewValidationError("date", date, "must use YYYY/MM/DD format (e.g. 2025/01/02)")
}

// ResolveEventDate validates a MM/DD date and returns zero-padded month and
// day. An empty date resolves to now.
func ResolveEventDate(date string, now time.Time) (month, day string, err error) {
	if date == "" {
		return now.Format("01"), now.Format("02"), nil
	}

	parts := strings.Split(date, "/")
	if len(parts) != 2 {
		return "", "", invalidEventDate(date)
	}
	if len(parts[0]) > 2 || len(parts[1]) > 2 {
		return "", "", invalidEventDate(date)
	}
	month = zfill(parts[0], 2)
	day = zfill(parts[1], 2)

	m, merr := strconv.Atoi(month)
	d, derr := strconv.Atoi(day)
	if merr != nil || derr != nil {
		return "", "", invalidEventDate(date)
	}
	if m < 1 || m > 12 {
		return "", "", apierrors.NewValidationError("month", month, "must be between 01 and 12")
	}
	if d < 1 || d > daysInMonth[m] {
		return "", "", apierrors.NewValidationError("day", day,
			fmt.Sprintf("month %s has %d days", month, daysInMonth[m]))
	}
	return month, day, nil
}

func invalidEventDate(date string) error {
	return apierrors.NewValidationError("date", date, "must use MM/DD format (e.g. 01/28)")
}

// zfill left-pads a numeric string with zeros to the given width.
func zfill(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
