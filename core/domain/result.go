// ABOUTME: Result domain models for scraped video listings
// ABOUTME: Defines the canonical row shape shared by scrapers, bookmarks and the recommender

package domain

// Record is the raw key-value data returned by a page-fetch engine for a
// single listed item. Keys vary per engine; records are normalized into
// ResultRow immediately and never retained past the fetch call.
type Record map[string]string

// ResultRow is the canonical row produced for every scraped item.
// All four fields are always present; missing source data becomes an
// empty string, never a nil or absent column.
type ResultRow struct {
	// Title is the listing title
	Title string

	// URL is the absolute link to the item
	URL string

	// Source identifies the site the row came from
	Source string

	// Description is the listing description, if the site provides one
	Description string
}

// SiteResult is the ordered set of rows fetched from a single site.
// An empty SiteResult is a valid terminal value, not an error.
type SiteResult []ResultRow

// CombinedResult is the concatenation of per-site results in the order
// the sites were requested. Duplicate rows across sites are preserved.
type CombinedResult []ResultRow

// ScoredRow is a result row annotated with a relevance score by the
// recommender.
type ScoredRow struct {
	ResultRow

	// Score is the cosine similarity against the user profile (0-1)
	Score float64
}
