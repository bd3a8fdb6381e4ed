// ABOUTME: RSS listing engine implementing PageFetcher using gofeed
// ABOUTME: For sites that expose their result listings as RSS/Atom feeds

package rss

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Christoph9211/video-recommender/core/domain"
	coreerrors "github.com/Christoph9211/video-recommender/core/errors"
	"github.com/Christoph9211/video-recommender/core/interfaces"
	"github.com/Christoph9211/video-recommender/infrastructure/fetch"
)

const listingCacheTTL = 15 * time.Minute

// Engine reads listings from feed URLs configured in rss-kind flows.
type Engine struct {
	flows  map[string]fetch.SiteFlow
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewEngine creates an engine for the rss-kind flows in the registry.
func NewEngine(flows []fetch.SiteFlow, deps interfaces.Dependencies) *Engine {
	byName := make(map[string]fetch.SiteFlow)
	for _, flow := range flows {
		if flow.Engine == fetch.EngineRSS {
			byName[flow.Name] = flow
		}
	}

	return &Engine{
		flows:  byName,
		cache:  deps.Cache,
		logger: deps.Logger,
	}
}

// Sites returns the site names this engine serves.
func (e *Engine) Sites() []string {
	sites := make([]string, 0, len(e.flows))
	for name := range e.flows {
		sites = append(sites, name)
	}
	return sites
}

// FetchListing downloads and parses the site's feed for the query.
func (e *Engine) FetchListing(ctx context.Context, req interfaces.FetchRequest) ([]domain.Record, error) {
	flow, ok := e.flows[req.Site]
	if !ok {
		return nil, &unsupportedSiteError{site: req.Site}
	}

	cacheKey := "listing:" + req.Site + ":" + req.Query
	if cached := e.cachedListing(ctx, cacheKey); cached != nil {
		return truncate(cached, req.MaxResults), nil
	}

	parser := gofeed.NewParser()
	if req.Identity != "" {
		parser.UserAgent = req.Identity
	}

	fetchCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	feedURL := flow.StartURL(req.Query)
	feed, err := parser.ParseURLWithContext(feedURL, fetchCtx)
	if err != nil {
		return nil, coreerrors.WrapError(err, "feed listing fetch failed")
	}

	records := make([]domain.Record, 0, len(feed.Items))
	for _, item := range feed.Items {
		records = append(records, domain.Record{
			"title":       item.Title,
			"url":         item.Link,
			"description": item.Description,
		})
	}

	e.storeListing(ctx, cacheKey, records)

	if e.logger != nil {
		e.logger.Debug("Parsed RSS listing", map[string]interface{}{
			"site": req.Site,
			"url":  feedURL,
			"rows": len(records),
		})
	}

	return truncate(records, req.MaxResults), nil
}

func (e *Engine) cachedListing(ctx context.Context, key string) []domain.Record {
	if e.cache == nil {
		return nil
	}

	data, err := e.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

func (e *Engine) storeListing(ctx context.Context, key string, records []domain.Record) {
	if e.cache == nil || len(records) == 0 {
		return
	}

	if data, err := json.Marshal(records); err == nil {
		_ = e.cache.Set(ctx, key, data, listingCacheTTL)
	}
}

func truncate(records []domain.Record, max int) []domain.Record {
	if max > 0 && len(records) > max {
		return records[:max]
	}
	return records
}

// unsupportedSiteError reports a site this engine has no flow for
type unsupportedSiteError struct {
	site string
}

func (e *unsupportedSiteError) Error() string {
	return "no RSS flow configured for site " + e.site
}
