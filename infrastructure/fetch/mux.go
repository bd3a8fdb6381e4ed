// ABOUTME: Mux routes fetch requests to the engine registered for each site
// ABOUTME: Implements the PageFetcher interface the scraper core consumes

package fetch

import (
	"context"
	"fmt"

	"github.com/Christoph9211/video-recommender/core/domain"
	"github.com/Christoph9211/video-recommender/core/interfaces"
)

// Mux dispatches per-site fetch requests to the engine that knows how
// to reach that site. Registration happens once during wiring; the map
// is read-only afterwards, so lookups need no locking.
type Mux struct {
	engines map[string]interfaces.PageFetcher
}

// NewMux creates an empty engine mux
func NewMux() *Mux {
	return &Mux{engines: make(map[string]interfaces.PageFetcher)}
}

// Register binds a site name to an engine, replacing any previous binding.
func (m *Mux) Register(site string, engine interfaces.PageFetcher) {
	m.engines[site] = engine
}

// Sites returns the registered site names.
func (m *Mux) Sites() []string {
	sites := make([]string, 0, len(m.engines))
	for site := range m.engines {
		sites = append(sites, site)
	}
	return sites
}

// FetchListing routes the request to the site's engine. An unregistered
// site is a hard error; the scraper core classifies it as a failed
// attempt like any other.
func (m *Mux) FetchListing(ctx context.Context, req interfaces.FetchRequest) ([]domain.Record, error) {
	engine, ok := m.engines[req.Site]
	if !ok {
		return nil, fmt.Errorf("site %q is not supported", req.Site)
	}
	return engine.FetchListing(ctx, req)
}
