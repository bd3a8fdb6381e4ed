// ABOUTME: Main entry point for the video recommender CLI
// ABOUTME: Wires config, cache, fetch engines, scraper core, and the recommender together

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/Christoph9211/video-recommender/core/bookmarks"
	"github.com/Christoph9211/video-recommender/core/domain"
	"github.com/Christoph9211/video-recommender/core/interfaces"
	"github.com/Christoph9211/video-recommender/core/recommend"
	"github.com/Christoph9211/video-recommender/core/scraper"
	"github.com/Christoph9211/video-recommender/infrastructure/cache/memory"
	"github.com/Christoph9211/video-recommender/infrastructure/cache/redis"
	"github.com/Christoph9211/video-recommender/infrastructure/fetch"
	htmlengine "github.com/Christoph9211/video-recommender/infrastructure/fetch/html"
	rssengine "github.com/Christoph9211/video-recommender/infrastructure/fetch/rss"
	logruslogger "github.com/Christoph9211/video-recommender/infrastructure/logger/logrus"
	"github.com/Christoph9211/video-recommender/pkg/config"
)

func main() {
	bookmarksPath := flag.String("bookmarks", "", "path to a Netscape bookmark export used to build the interest profile")
	query := flag.String("query", "", "search query sent to every site (empty uses each site's default listing)")
	maxResults := flag.Int("max-results", 20, "maximum rows fetched per site")
	topN := flag.Int("top", 10, "number of recommendations to print")
	sitesFile := flag.String("sites", "", "path to the YAML site registry (overrides SITES_FILE)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *sitesFile != "" {
		cfg.SitesFile = *sitesFile
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting video recommender", map[string]interface{}{
		"sites_file": cfg.SitesFile,
		"cache_type": cfg.Cache.Type,
		"query":      *query,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Load the site registry and build the engine mux
	flows, err := fetch.LoadSites(cfg.SitesFile)
	if err != nil {
		log.Fatalf("Failed to load site registry: %v", err)
	}

	engineDeps := interfaces.Dependencies{Cache: cache, Logger: logger}
	htmlEng := htmlengine.NewEngine(flows, engineDeps)
	rssEng := rssengine.NewEngine(flows, engineDeps)

	mux := fetch.NewMux()
	sites := make([]string, 0, len(flows))
	for _, flow := range flows {
		switch flow.Engine {
		case fetch.EngineRSS:
			mux.Register(flow.Name, rssEng)
		default:
			mux.Register(flow.Name, htmlEng)
		}
		sites = append(sites, flow.Name)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:   cache,
		Fetcher: mux,
		Logger:  logger,
	}

	// Create services
	scraperService, err := scraper.NewService(cfg.FetchConfig(), deps, cfg.Scraper.MaxConcurrent)
	if err != nil {
		log.Fatalf("Failed to create scraper service: %v", err)
	}
	recommendService := recommend.NewService(deps)

	// Interrupts cancel in-flight fetches instead of killing the process
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	combined := scraperService.Fetch(ctx, sites, *query, *maxResults)
	if len(combined) == 0 {
		logger.Warn("All sites came back empty, using example data", nil)
		combined = exampleRows()
	}

	if *bookmarksPath == "" {
		printRows(combined)
		return
	}

	rows, err := bookmarks.ParseFile(*bookmarksPath)
	if err != nil {
		log.Fatalf("Failed to parse bookmarks: %v", err)
	}

	profile, err := recommendService.BuildProfile(rows)
	if err != nil {
		logger.Warn("Could not build a profile, printing unranked results", map[string]interface{}{
			"error": err.Error(),
		})
		printRows(combined)
		return
	}

	printScored(recommendService.Recommend(combined, profile, *topN))
}

// exampleRows stands in when every configured site failed or returned
// nothing, so the CLI always has output to show.
func exampleRows() domain.CombinedResult {
	return domain.CombinedResult{
		{Title: "Deep sea exploration highlights", URL: "https://example.com/videos/deep-sea", Source: "example", Description: "Sample result shown when no site produced data"},
		{Title: "City timelapse compilation", URL: "https://example.com/videos/timelapse", Source: "example", Description: "Sample result shown when no site produced data"},
		{Title: "Workshop woodworking basics", URL: "https://example.com/videos/woodworking", Source: "example", Description: "Sample result shown when no site produced data"},
	}
}

func printRows(rows domain.CombinedResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tTITLE\tURL")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Source, row.Title, row.URL)
	}
	w.Flush()
}

func printScored(rows []domain.ScoredRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tSOURCE\tTITLE\tURL")
	for _, row := range rows {
		fmt.Fprintf(w, "%.3f\t%s\t%s\t%s\n", row.Score, row.Source, row.Title, row.URL)
	}
	w.Flush()
}
