// ABOUTME: HTML listing engine implementing PageFetcher using colly
// ABOUTME: Applies per-site throttling and caches listings per (site, query)

package html

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly"
	"golang.org/x/time/rate"

	"github.com/Christoph9211/video-recommender/core/domain"
	coreerrors "github.com/Christoph9211/video-recommender/core/errors"
	"github.com/Christoph9211/video-recommender/core/interfaces"
	"github.com/Christoph9211/video-recommender/infrastructure/fetch"
)

const (
	maxBodySize     = 5 * 1024 * 1024
	listingCacheTTL = 15 * time.Minute
)

// Engine fetches result listings from HTML pages using the CSS
// selectors configured in each site's flow. One engine instance serves
// all of its sites; a fresh collector is built per request so identity
// changes between retry attempts take effect.
type Engine struct {
	flows  map[string]fetch.SiteFlow
	cache  interfaces.Cache
	logger interfaces.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewEngine creates an engine for the html-kind flows in the registry.
func NewEngine(flows []fetch.SiteFlow, deps interfaces.Dependencies) *Engine {
	byName := make(map[string]fetch.SiteFlow)
	for _, flow := range flows {
		if flow.Engine == fetch.EngineHTML {
			byName[flow.Name] = flow
		}
	}

	return &Engine{
		flows:    byName,
		cache:    deps.Cache,
		logger:   deps.Logger,
		limiters: make(map[string]*rate.Limiter),
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

// FetchListing scrapes one listing page and returns its raw records.
func (e *Engine) FetchListing(ctx context.Context, req interfaces.FetchRequest) ([]domain.Record, error) {
	flow, ok := e.flows[req.Site]
	if !ok {
		return nil, &unsupportedSiteError{site: req.Site}
	}

	if err := e.limiter(flow).Wait(ctx); err != nil {
		return nil, err
	}

	cacheKey := "listing:" + req.Site + ":" + req.Query
	if cached := e.cachedListing(ctx, cacheKey); cached != nil {
		return truncate(cached, req.MaxResults), nil
	}

	collectorOpts := []func(*colly.Collector){
		colly.MaxBodySize(maxBodySize),
		colly.AllowURLRevisit(),
	}
	if req.Identity != "" {
		collectorOpts = append(collectorOpts, colly.UserAgent(req.Identity))
	}

	c := colly.NewCollector(collectorOpts...)
	if req.Timeout > 0 {
		c.SetRequestTimeout(req.Timeout)
	}

	var records []domain.Record
	c.OnHTML(flow.Selector, func(el *colly.HTMLElement) {
		href := el.Attr(flow.HrefAttr)
		if href == "" {
			return
		}

		title := el.Attr(flow.TitleAttr)
		if title == "" {
			title = strings.TrimSpace(el.Text)
		}

		records = append(records, domain.Record{
			"title": title,
			"url":   el.Request.AbsoluteURL(href),
		})
	})

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	startURL := flow.StartURL(req.Query)
	if err := c.Visit(startURL); err != nil {
		return nil, coreerrors.WrapError(err, "listing fetch failed")
	}
	if fetchErr != nil {
		return nil, coreerrors.WrapError(fetchErr, "listing fetch failed")
	}

	records = dedupeByURL(records)
	e.storeListing(ctx, cacheKey, records)

	if e.logger != nil {
		e.logger.Debug("Scraped HTML listing", map[string]interface{}{
			"site": req.Site,
			"url":  startURL,
			"rows": len(records),
		})
	}

	return truncate(records, req.MaxResults), nil
}

// limiter returns the site's rate limiter, creating it on first use.
func (e *Engine) limiter(flow fetch.SiteFlow) *rate.Limiter {
	e.mu.Lock()
	defer e.mu.Unlock()

	limiter, ok := e.limiters[flow.Name]
	if !ok {
		interval := time.Duration(flow.Throttle * float64(time.Second))
		limiter = rate.NewLimiter(rate.Every(interval), 1)
		e.limiters[flow.Name] = limiter
	}
	return limiter
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

// dedupeByURL drops repeated links, keeping the first occurrence.
func dedupeByURL(records []domain.Record) []domain.Record {
	seen := make(map[string]bool, len(records))
	unique := records[:0]
	for _, record := range records {
		url := record["url"]
		if url != "" && seen[url] {
			continue
		}
		seen[url] = true
		unique = append(unique, record)
	}
	return unique
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
	return "no HTML flow configured for site " + e.site
}
