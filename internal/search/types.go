package search

// SearchResponse is the Core REST API search payload
type SearchResponse struct {
	Pages []Page `json:"pages"`
}

// Page is a single page entry in a search response. Excerpt is only present
// for content search; matched_title only when a redirect matched the query.
type Page struct {
	ID           int64      `json:"id"`
	Key          string     `json:"key"`
	Title        string     `json:"title"`
	Excerpt      string     `json:"excerpt"`
	MatchedTitle string     `json:"matched_title"`
	Description  string     `json:"description"`
	Thumbnail    *Thumbnail `json:"thumbnail"`
}

// Thumbnail is page image metadata
type Thumbnail struct {
	MimeType string `json:"mimetype"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	URL      string `json:"url"`
}

// APIError is the Core REST API error payload
type APIError struct {
	HTTPCode   int    `json:"httpCode"`
	HTTPReason string `json:"httpReason"`
	Message    string `json:"message"`
}
