// Package core contains the business logic for the video recommender.
// It is designed to be framework-agnostic and can be used independently
// of any CLI or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ResultRow, SiteResult, etc.)
// - scraper: Resilient multi-site fetch orchestration with retries
// - bookmarks: Netscape bookmark export parsing
// - recommend: TF-IDF profile building and candidate ranking
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, fetcher, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/Christoph9211/video-recommender/core/interfaces"
//	    "github.com/Christoph9211/video-recommender/core/scraper"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:   myCache,   // implements interfaces.Cache
//	    Fetcher: myFetcher, // implements interfaces.PageFetcher
//	    Logger:  myLogger,  // implements interfaces.Logger
//	}
//
//	// Create service
//	svc, err := scraper.NewService(scraper.DefaultFetchConfig(), deps, 2)
//	if err != nil {
//	    // Only configuration problems fail here
//	}
//
//	// Fetch listings across sites
//	rows := svc.Fetch(ctx, []string{"alpha", "beta"}, "deep sea", 20)
//
package core
