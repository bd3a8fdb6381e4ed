// ABOUTME: PageFetcher defines the injected page-fetch capability consumed by the scraper core
// ABOUTME: Implementations live in infrastructure (colly HTML engine, gofeed RSS engine)

package interfaces

import (
	"context"
	"time"

	"github.com/Christoph9211/video-recommender/core/domain"
)

// FetchRequest describes a single listing fetch attempt.
type FetchRequest struct {
	// Site is the site identifier the engine should fetch from
	Site string

	// Query is the search query; empty means popular/trending content
	Query string

	// MaxResults caps the number of records the engine should return
	MaxResults int

	// Identity is the client identity (user-agent) for this attempt.
	// Empty means the engine chooses its own.
	Identity string

	// Timeout is the per-attempt deadline for the fetch
	Timeout time.Duration
}

// PageFetcher is the page-fetch capability the scraper core composes.
// The core treats it as a black box: it assumes nothing about internal
// retry behavior and layers all resilience on top of it.
//
// FetchListing returns the raw records found on the listing page, or an
// error for network, timeout or parse failures. Returning zero records
// with a nil error is a valid outcome and is classified by the caller.
type PageFetcher interface {
	FetchListing(ctx context.Context, req FetchRequest) ([]domain.Record, error)
}
