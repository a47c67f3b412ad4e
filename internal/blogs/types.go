package blogs

import "time"

// Post is the normalized projection of a feed entry.
type Post struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Summary     string     `json:"summary,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"published_date,omitempty"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// SearchResult is a scored feed entry. Relevance is always positive:
// zero-score entries are never materialized.
type SearchResult struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Summary     string     `json:"summary,omitempty"`
	PublishedAt *time.Time `json:"published_date,omitempty"`
	Category    string     `json:"category,omitempty"`
	Relevance   int        `json:"relevance_score"`
}

// Metadata holds best-effort fields extracted from a blog post page.
// Empty string / nil timestamp means the field was not found.
type Metadata struct {
	Title       string
	Author      string
	Category    string
	PublishedAt *time.Time
	SourceURL   string
}
