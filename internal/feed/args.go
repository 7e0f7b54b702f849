package feed

// GetFeaturedArgs contains parameters for the featured content feed
type GetFeaturedArgs struct {
	Date     string `json:"date,omitempty" jsonschema_description:"Date in YYYY/MM/DD format (default: today)"`
	Project  string `json:"project,omitempty" jsonschema_description:"Must be wikipedia; feeds exist for no other project"`
	Language string `json:"language,omitempty" jsonschema_description:"One of en, de, fr, es, ru, ja, zh (default: en)"`
}

// GetFeaturedResult is the result of the featured content feed. Sub-sections
// the upstream has no content for are absent rather than empty.
type GetFeaturedResult struct {
	Date             string            `json:"date"`
	FeaturedArticle  *FeaturedArticle  `json:"featured_article,omitempty"`
	MostReadArticles []MostReadArticle `json:"most_read_articles,omitempty"`
	PictureOfTheDay  *PictureOfTheDay  `json:"picture_of_the_day,omitempty"`
}

// FeaturedArticle is the day's featured article
type FeaturedArticle struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Extract     string `json:"extract,omitempty"`
	URL         string `json:"url,omitempty"`
}

// MostReadArticle is one entry from the most-read list
type MostReadArticle struct {
	Title   string `json:"title"`
	Extract string `json:"extract,omitempty"`
	Views   int64  `json:"views,omitempty"`
	Rank    int    `json:"rank,omitempty"`
	URL     string `json:"url,omitempty"`
}

// PictureOfTheDay is the day's featured image
type PictureOfTheDay struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	FilePage    string `json:"file_page,omitempty"`
}

// GetOnThisDayArgs contains parameters for the on-this-day feed
type GetOnThisDayArgs struct {
	Date     string `json:"date,omitempty" jsonschema_description:"Date in MM/DD format (default: today)"`
	Type     string `json:"type,omitempty" jsonschema_description:"Event category: all, selected, births, deaths, holidays or events (default: all)"`
	Project  string `json:"project,omitempty" jsonschema_description:"Must be wikipedia; feeds exist for no other project"`
	Language string `json:"language,omitempty" jsonschema_description:"One of en, de, fr, es, ru, ja, zh (default: en)"`
}

// GetOnThisDayResult is the result of the on-this-day feed. Only the
// categories selected by the type argument are populated.
type GetOnThisDayResult struct {
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Selected []Event `json:"selected,omitempty"`
	Events   []Event `json:"events,omitempty"`
	Births   []Event `json:"births,omitempty"`
	Deaths   []Event `json:"deaths,omitempty"`
	Holidays []Event `json:"holidays,omitempty"`
}

// Event is a single historical event. Holidays carry no year.
type Event struct {
	Year  int        `json:"year,omitempty"`
	Text  string     `json:"text"`
	Pages []PageLink `json:"pages,omitempty"`
}

// PageLink is a page related to an event
type PageLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
