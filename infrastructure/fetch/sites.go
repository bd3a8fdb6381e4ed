// ABOUTME: Site flow registry loaded from YAML; describes how to reach each site's listing
// ABOUTME: Flows are consumed by the page-fetch engines, never by the scraper core

package fetch

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EngineKind selects the transport used for a site's listing.
type EngineKind string

const (
	// EngineHTML scrapes an HTML listing page with a CSS selector
	EngineHTML EngineKind = "html"

	// EngineRSS reads the site's listing from an RSS/Atom feed
	EngineRSS EngineKind = "rss"
)

// SiteFlow describes one site's listing: where to start for a given
// query, how to pick result elements, and how hard the site may be hit.
type SiteFlow struct {
	// Name is the site identifier used in fetch requests
	Name string `yaml:"name"`

	// Engine selects the transport (html or rss)
	Engine EngineKind `yaml:"engine"`

	// SearchURL is a printf-style template with one %s for the escaped query
	SearchURL string `yaml:"search_url"`

	// DefaultURL is fetched when the query is empty (popular/trending)
	DefaultURL string `yaml:"default_url"`

	// Selector is the CSS selector matching one result link (html engine)
	Selector string `yaml:"selector"`

	// TitleAttr is the element attribute holding the title; the element
	// text is used when the attribute is absent
	TitleAttr string `yaml:"title_attr"`

	// HrefAttr is the element attribute holding the link
	HrefAttr string `yaml:"href_attr"`

	// Throttle is the minimum interval between requests, in seconds
	Throttle float64 `yaml:"throttle"`
}

// StartURL resolves the listing URL for a query. An empty query falls
// back to the site's default listing when one is configured, and a flow
// without a search template always serves its default listing.
func (f SiteFlow) StartURL(query string) string {
	if f.SearchURL == "" || (query == "" && f.DefaultURL != "") {
		return f.DefaultURL
	}
	return fmt.Sprintf(f.SearchURL, url.QueryEscape(query))
}

// sitesFile is the on-disk shape of the registry
type sitesFile struct {
	Sites []SiteFlow `yaml:"sites"`
}

// LoadSites reads and validates the site registry from a YAML file.
func LoadSites(path string) ([]SiteFlow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}

	return ParseSites(data)
}

// ParseSites parses the registry from raw YAML, applying defaults and
// rejecting structurally incomplete flows.
func ParseSites(data []byte) ([]SiteFlow, error) {
	var file sitesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sites YAML: %w", err)
	}

	seen := make(map[string]bool, len(file.Sites))
	for i := range file.Sites {
		flow := &file.Sites[i]
		setDefaults(flow)

		if err := validate(*flow); err != nil {
			return nil, err
		}
		if seen[flow.Name] {
			return nil, fmt.Errorf("duplicate site name %q", flow.Name)
		}
		seen[flow.Name] = true
	}

	return file.Sites, nil
}

func setDefaults(flow *SiteFlow) {
	flow.Name = strings.ToLower(strings.TrimSpace(flow.Name))
	if flow.Engine == "" {
		flow.Engine = EngineHTML
	}
	if flow.TitleAttr == "" {
		flow.TitleAttr = "title"
	}
	if flow.HrefAttr == "" {
		flow.HrefAttr = "href"
	}
	if flow.Throttle <= 0 {
		flow.Throttle = 1.0
	}
}

func validate(flow SiteFlow) error {
	if flow.Name == "" {
		return fmt.Errorf("site flow is missing a name")
	}
	if flow.Engine != EngineHTML && flow.Engine != EngineRSS {
		return fmt.Errorf("site %q: unknown engine %q", flow.Name, flow.Engine)
	}
	if flow.SearchURL == "" && flow.DefaultURL == "" {
		return fmt.Errorf("site %q: needs a search_url or default_url", flow.Name)
	}
	if flow.SearchURL != "" && !strings.Contains(flow.SearchURL, "%s") {
		return fmt.Errorf("site %q: search_url must contain a %%s query placeholder", flow.Name)
	}
	if flow.Engine == EngineHTML && flow.Selector == "" {
		return fmt.Errorf("site %q: html engine requires a selector", flow.Name)
	}
	return nil
}
