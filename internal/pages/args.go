package pages

// GetPageArgs contains parameters for fetching a page summary
type GetPageArgs struct {
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Page title, e.g. Albert Einstein"`
	Project  string `json:"project,omitempty" jsonschema_description:"Wikimedia project such as wikipedia or wiktionary (default: wikipedia)"`
	Language string `json:"language,omitempty" jsonschema_description:"Language code such as en or de (default: en)"`
}

// GetPageResult is the result of fetching a page
type GetPageResult struct {
	Title        string `json:"title"`
	Extract      string `json:"extract"`
	URL          string `json:"url"`
	LastModified string `json:"last_modified,omitempty"`
	Description  string `json:"description,omitempty"`
}

// GetLanguagesArgs contains parameters for listing language versions of a page
type GetLanguagesArgs struct {
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Page title, e.g. Albert Einstein"`
	Project  string `json:"project,omitempty" jsonschema_description:"Wikimedia project such as wikipedia or wiktionary (default: wikipedia)"`
	Language string `json:"language,omitempty" jsonschema_description:"Language code of the source page (default: en)"`
}

// GetLanguagesResult is the result of listing language versions
type GetLanguagesResult struct {
	Title     string         `json:"title"`
	Languages []LanguageLink `json:"languages"`
	Count     int            `json:"count"`
}

// LanguageLink is one cross-language version of a page
type LanguageLink struct {
	LanguageCode string `json:"language_code"`
	LanguageName string `json:"language_name,omitempty"`
	Title        string `json:"title"`
	URL          string `json:"url"`
}
