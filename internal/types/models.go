package types

// RawPost is one post as returned by the Reddit search listing.
// Field names follow the Reddit API JSON.
type RawPost struct {
	Title       string `json:"title"`
	Selftext    string `json:"selftext"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
	CreatedUTC  int64  `json:"created_utc"`
	Subreddit   string `json:"subreddit"`
	Permalink   string `json:"permalink"`
}

// CategorizedItem is one displayed post inside a category bucket.
type CategorizedItem struct {
	Text      string `json:"text"`
	Subreddit string `json:"subreddit"`
	Score     int    `json:"score"`
	Comments  int    `json:"comments"`
	TimeAgo   string `json:"timeAgo"`
	URL       string `json:"url"`
}

// KeywordEntry is one weighted term in a category's keyword cloud.
type KeywordEntry struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// Stats summarizes how many posts were considered and how many are
// displayed per category (post-truncation counts).
type Stats struct {
	Total       int `json:"total"`
	Benefits    int `json:"benefits"`
	PainPoints  int `json:"painPoints"`
	Suggestions int `json:"suggestions"`
}

// Clouds holds the per-category keyword clouds.
type Clouds struct {
	Benefits    []KeywordEntry `json:"benefits"`
	PainPoints  []KeywordEntry `json:"painPoints"`
	Suggestions []KeywordEntry `json:"suggestions"`
}

// Report is the full categorization result returned to the caller.
type Report struct {
	Query       string            `json:"query"`
	Timeframe   string            `json:"timeframe"`
	Subreddit   string            `json:"subreddit"`
	Stats       Stats             `json:"stats"`
	Benefits    []CategorizedItem `json:"benefits"`
	PainPoints  []CategorizedItem `json:"painPoints"`
	Suggestions []CategorizedItem `json:"suggestions"`
	Clouds      Clouds            `json:"clouds"`
}
