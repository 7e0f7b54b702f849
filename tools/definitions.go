package tools

// AllTools contains all tool specifications for the Wikimedia MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "search_content",
		Method:   "SearchContent",
		Title:    "Search Content",
		Category: "search",
		API:      "core",
		Description: `Full-text search ACROSS page content of a Wikimedia project.

USE WHEN: User asks "find articles about X", "search Wikipedia for X", or wants pages whose text mentions a topic.

NOT FOR: Completing a partial or misspelled title (use search_titles instead). Not for reading a known page (use get_page).

PARAMETERS:
- query: Search text (required)
- limit: Max results, 1-50 (default 10)
- project: Wikimedia project, e.g. "wikipedia", "wiktionary" (default "wikipedia")
- language: Language code, e.g. "en", "de" (default "en")

RETURNS: Matching pages with title, description, highlighted snippet, and URL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_titles",
		Method:   "SearchTitles",
		Title:    "Search Titles",
		Category: "search",
		API:      "core",
		Description: `Autocomplete page titles that START WITH the query.

USE WHEN: User has a partial or approximate title: "pages starting with Albert", "what's the exact title of Einstein's article".

NOT FOR: Searching article text for a topic (use search_content instead).

PARAMETERS:
- query: Title prefix (required)
- limit: Max suggestions, 1-100 (default 10)
- project: Wikimedia project (default "wikipedia")
- language: Language code (default "en")

RETURNS: Title suggestions with descriptions and URLs, in upstream relevance order.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PAGE TOOLS
	// ==========================================================================
	{
		Name:     "get_page",
		Method:   "GetPage",
		Title:    "Get Page",
		Category: "pages",
		API:      "rest",
		Description: `Retrieve a page summary: title, plain-text extract, URL, and last modified date.

USE WHEN: User says "show me the article on X", "summarize X from Wikipedia", "when was the X article last updated".

NOT FOR: Finding pages about a topic (use search_content). Not for other language editions (use get_languages).

PARAMETERS:
- title: Exact page title (required)
- project: Wikimedia project (default "wikipedia")
- language: Language code (default "en")

RETURNS: Page title, extract, canonical URL, last modified timestamp, and short description. Nonexistent titles return a not-found error.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_languages",
		Method:   "GetLanguages",
		Title:    "Get Languages",
		Category: "pages",
		API:      "action",
		Description: `List versions of a page in other languages.

USE WHEN: User asks "is there a German version of X", "what languages is this article available in", "show the French title for X".

NOT FOR: Reading page content (use get_page).

PARAMETERS:
- title: Exact page title (required)
- project: Wikimedia project (default "wikipedia")
- language: Source language code (default "en")

RETURNS: Language links sorted by language code, each with language name, localized title, and URL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// FEED TOOLS
	// ==========================================================================
	{
		Name:     "get_featured",
		Method:   "GetFeatured",
		Title:    "Get Featured Content",
		Category: "feeds",
		API:      "feed",
		Description: `Get Wikipedia's featured content for a date: featured article, most read pages, and picture of the day.

USE WHEN: User asks "what's today's featured article", "most read Wikipedia pages yesterday", "show the picture of the day".

NOT FOR: Historical events on a date (use get_on_this_day).

PARAMETERS:
- date: YYYY/MM/DD (default today)
- project: Must be "wikipedia"
- language: One of en, de, fr, es, ru, ja, zh (default "en")

RETURNS: Featured article summary, top 5 most read articles with view counts, and picture of the day. Sections the feed omits for that day are absent, not errors.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_on_this_day",
		Method:   "GetOnThisDay",
		Title:    "Get On This Day",
		Category: "feeds",
		API:      "feed",
		Description: `Get historical events that happened on a calendar day.

USE WHEN: User asks "what happened on July 20", "famous people born today", "holidays on this date", "who died on 03/15".

NOT FOR: Featured articles or most-read pages (use get_featured).

PARAMETERS:
- date: MM/DD (default today)
- type: "all", "selected", "births", "deaths", "holidays", or "events" (default "all")
- project: Must be "wikipedia"
- language: One of en, de, fr, es, ru, ja, zh (default "en")

RETURNS: Events grouped by category, each with year, description, and related pages. Curated and general events capped at 10, births and deaths at 5.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
