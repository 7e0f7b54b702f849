package pages

// PageSummary is the REST page summary payload
type PageSummary struct {
	Title        string       `json:"title"`
	DisplayTitle string       `json:"displaytitle"`
	Description  string       `json:"description"`
	Extract      string       `json:"extract"`
	Timestamp    string       `json:"timestamp"`
	Lang         string       `json:"lang"`
	ContentURLs  *ContentURLs `json:"content_urls"`
}

// ContentURLs holds per-platform page links
type ContentURLs struct {
	Desktop PlatformURLs `json:"desktop"`
	Mobile  PlatformURLs `json:"mobile"`
}

// PlatformURLs is the set of links for one platform
type PlatformURLs struct {
	Page      string `json:"page"`
	Revisions string `json:"revisions"`
	Edit      string `json:"edit"`
}

// QueryResponse is the Action API envelope (formatversion=2)
type QueryResponse struct {
	BatchComplete bool         `json:"batchcomplete"`
	Query         *QueryResult `json:"query"`
}

// QueryResult is the query block of an Action API response
type QueryResult struct {
	Redirects []Redirect  `json:"redirects"`
	Pages     []QueryPage `json:"pages"`
}

// Redirect records a title the API followed
type Redirect struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// QueryPage is one page entry in an Action API query response
type QueryPage struct {
	PageID    int64      `json:"pageid"`
	Title     string     `json:"title"`
	Missing   bool       `json:"missing"`
	LangLinks []LangLink `json:"langlinks"`
}

// LangLink is one langlinks entry with llprop=url|langname|autonym
type LangLink struct {
	Lang     string `json:"lang"`
	LangName string `json:"langname"`
	Autonym  string `json:"autonym"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// APIError is the REST API problem+json error payload
type APIError struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
