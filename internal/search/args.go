package search

// SearchContentArgs contains parameters for full-text content search
type SearchContentArgs struct {
	Query    string `json:"query" jsonschema:"required" jsonschema_description:"Search terms to match against page content"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results, 1-50 (default: 10)"`
	Project  string `json:"project,omitempty" jsonschema_description:"Wikimedia project such as wikipedia or wiktionary (default: wikipedia)"`
	Language string `json:"language,omitempty" jsonschema_description:"Language code such as en or de (default: en)"`
}

// SearchContentResult is the result of a content search
type SearchContentResult struct {
	Results []PageMatch `json:"results"`
	Count   int         `json:"count"`
}

// PageMatch is a single full-text search hit
type PageMatch struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
	URL         string `json:"url"`
}

// SearchTitlesArgs contains parameters for title autocomplete search
type SearchTitlesArgs struct {
	Query    string `json:"query" jsonschema:"required" jsonschema_description:"Prefix to match against page titles"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results, 1-100 (default: 10)"`
	Project  string `json:"project,omitempty" jsonschema_description:"Wikimedia project such as wikipedia or wiktionary (default: wikipedia)"`
	Language string `json:"language,omitempty" jsonschema_description:"Language code such as en or de (default: en)"`
}

// SearchTitlesResult is the result of a title search
type SearchTitlesResult struct {
	Results []TitleMatch `json:"results"`
	Count   int          `json:"count"`
}

// TitleMatch is a single title suggestion
type TitleMatch struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}
