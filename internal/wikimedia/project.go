// Package wikimedia holds the project and language vocabulary shared by all
// API clients: defaults, the feed language set, and URL builders for project
// hosts and page links.
package wikimedia

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	apierrors "github.com/olgasafonova/wikimedia-mcp-server/internal/errors"
)

const (
	// DefaultProject is used when a tool call omits the project argument.
	DefaultProject = "wikipedia"

	// DefaultLanguage is used when a tool call omits the language argument.
	DefaultLanguage = "en"
)

// Pre-compiled patterns for host-safe tokens. Both values end up as labels
// in a Wikimedia host name, so they must be validated before interpolation.
var (
	languagePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	projectPattern  = regexp.MustCompile(`^[a-z]+$`)
)

// FeedLanguages lists the Wikipedia languages that have featured-content and
// on-this-day feeds.
var FeedLanguages = map[string]bool{
	"en": true,
	"de": true,
	"fr": true,
	"es": true,
	"ru": true,
	"ja": true,
	"zh": true,
}

// SupportedFeedLanguages returns the feed language codes in sorted order.
func SupportedFeedLanguages() []string {
	codes := make([]string, 0, len(FeedLanguages))
	for code := range FeedLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Normalize lowercases and trims a project or language token.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateLanguage checks that a language code is safe to use in a host name.
// Codes like "en", "zh-yue" and "be-tarask" are accepted.
func ValidateLanguage(language string) error {
	if language == "" {
		return apierrors.NewValidationError("language", "", "is required")
	}
	if !languagePattern.MatchString(language) {
		return apierrors.NewValidationError("language", language, `must be a language code like "en" or "zh-yue"`)
	}
	return nil
}

// ValidateProject checks that a project name is safe to use in a host name.
func ValidateProject(project string) error {
	if project == "" {
		return apierrors.NewValidationError("project", "", "is required")
	}
	if !projectPattern.MatchString(project) {
		return apierrors.NewValidationError("project", project, `must be a project name like "wikipedia" or "wiktionary"`)
	}
	return nil
}

// ResolveSite applies defaults to a project/language pair and validates the
// result. Both tokens are normalized first, so " EN " and "en" are the same
// language.
func ResolveSite(project, language string) (string, string, error) {
	project = Normalize(project)
	if project == "" {
		project = DefaultProject
	}
	language = Normalize(language)
	if language == "" {
		language = DefaultLanguage
	}
	if err := ValidateProject(project); err != nil {
		return "", "", err
	}
	if err := ValidateLanguage(language); err != nil {
		return "", "", err
	}
	return project, language, nil
}

// Host returns the canonical host URL for a language edition of a project,
// e.g. https://en.wikipedia.org.
func Host(language, project string) string {
	return fmt.Sprintf("https://%s.%s.org", language, project)
}

// PageURL returns the canonical /wiki/ link for a page key. Slashes in the
// key separate subpages and stay literal; other reserved characters are
// percent-encoded.
func PageURL(language, project, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return Host(language, project) + "/wiki/" + strings.Join(segments, "/")
}

// TitleKey converts a display title to its URL key form with underscores
// instead of spaces.
func TitleKey(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}
