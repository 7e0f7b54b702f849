package feed

// FeaturedResponse is the featured-content feed payload. Every block is
// optional; quiet days can miss any of them.
type FeaturedResponse struct {
	TFA      *FeedArticle `json:"tfa"`
	MostRead *MostRead    `json:"mostread"`
	Image    *FeedImage   `json:"image"`
}

// MostRead is the most-read block of a featured-content payload
type MostRead struct {
	Date     string        `json:"date"`
	Articles []FeedArticle `json:"articles"`
}

// FeedArticle is a page summary as embedded in feed payloads
type FeedArticle struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Extract     string       `json:"extract"`
	Views       int64        `json:"views"`
	Rank        int          `json:"rank"`
	Timestamp   string       `json:"timestamp"`
	Titles      *Titles      `json:"titles"`
	ContentURLs *ContentURLs `json:"content_urls"`
}

// Titles carries the canonical and normalized forms of a page title
type Titles struct {
	Canonical  string `json:"canonical"`
	Normalized string `json:"normalized"`
	Display    string `json:"display"`
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

// FeedImage is the picture-of-the-day block
type FeedImage struct {
	Title       string            `json:"title"`
	Thumbnail   *ImageFile        `json:"thumbnail"`
	Image       *ImageFile        `json:"image"`
	FilePage    string            `json:"file_page"`
	Description *ImageDescription `json:"description"`
}

// ImageFile is one rendition of an image
type ImageFile struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ImageDescription is the localized caption of an image
type ImageDescription struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// OnThisDayResponse is the on-this-day feed payload. A narrowed request
// populates only the matching category.
type OnThisDayResponse struct {
	Selected []FeedEvent `json:"selected"`
	Events   []FeedEvent `json:"events"`
	Births   []FeedEvent `json:"births"`
	Deaths   []FeedEvent `json:"deaths"`
	Holidays []FeedEvent `json:"holidays"`
}

// FeedEvent is one entry in an on-this-day category
type FeedEvent struct {
	Year  int           `json:"year"`
	Text  string        `json:"text"`
	Pages []FeedArticle `json:"pages"`
}

// APIError is the feed API error payload
type APIError struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
