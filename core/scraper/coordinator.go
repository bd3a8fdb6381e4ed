// ABOUTME: Multi-site coordinator fans a query out across sites with failure isolation
// ABOUTME: Output row order always follows request order, regardless of completion order

package scraper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Christoph9211/video-recommender/core/domain"
	"github.com/Christoph9211/video-recommender/core/interfaces"
)

const defaultMaxConcurrent = 2

// Service is the public entry point of the scraper core. It runs one
// site fetch orchestrator per requested site and aggregates the results.
// Its fetch operations never return an error for ordinary network or
// site failures; only an invalid configuration fails, and it does so at
// construction.
type Service struct {
	cfg           FetchConfig
	deps          interfaces.Dependencies
	maxConcurrent int

	// sleep is the suspension primitive used between attempts,
	// replaceable by tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewService validates the config and returns a ready-to-use scraper
// service. maxConcurrent bounds the number of sites fetched in
// parallel; values below 1 fall back to the default.
func NewService(cfg FetchConfig, deps interfaces.Dependencies, maxConcurrent int) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if deps.Fetcher == nil {
		return nil, errors.New("page fetcher not configured")
	}

	if maxConcurrent < 1 {
		maxConcurrent = defaultMaxConcurrent
	}

	return &Service{
		cfg:           cfg,
		deps:          deps,
		maxConcurrent: maxConcurrent,
		sleep:         sleepWithContext,
	}, nil
}

// FetchSite fetches a single site's listing with full retry handling.
// The returned SiteResult is empty, never nil, when every attempt
// failed.
func (s *Service) FetchSite(ctx context.Context, site, query string, maxResults int) domain.SiteResult {
	orchestrator := &siteOrchestrator{
		cfg:     s.cfg,
		fetcher: s.deps.Fetcher,
		logger:  s.logger(),
		sleep:   s.sleep,
	}

	return orchestrator.fetchSite(ctx, site, query, maxResults)
}

// Fetch fans the query out across the given sites and concatenates the
// per-site rows in the order the sites were requested. Each site runs
// in isolation: one site exhausting its retries never prevents another
// from contributing rows. When every site comes back empty the combined
// result is empty; substituting fallback data is the caller's decision,
// not this layer's.
func (s *Service) Fetch(ctx context.Context, sites []string, query string, maxResults int) domain.CombinedResult {
	if len(sites) == 0 {
		return domain.CombinedResult{}
	}

	// Results are joined by index so output order is deterministic even
	// though completion order is not.
	results := make([]domain.SiteResult, len(sites))

	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i, site := range sites {
		wg.Add(1)
		go func(i int, site string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = s.FetchSite(ctx, site, query, maxResults)
		}(i, site)
	}

	wg.Wait()

	// maxResults <= 0 means uncapped, so it must not feed the capacity.
	capacity := 0
	if maxResults > 0 {
		capacity = len(sites) * maxResults
	}

	combined := make(domain.CombinedResult, 0, capacity)
	for _, siteResult := range results {
		combined = append(combined, siteResult...)
	}

	s.logger().Info("Combined fetch finished", map[string]interface{}{
		"sites": len(sites),
		"rows":  len(combined),
	})

	return combined
}

// logger returns the configured logger or a no-op fallback, so core
// paths never have to nil-check before logging.
func (s *Service) logger() interfaces.Logger {
	if s.deps.Logger != nil {
		return s.deps.Logger
	}
	return noopLogger{}
}

// noopLogger swallows log output when no logger is configured.
type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}
