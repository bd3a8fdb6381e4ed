// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, page fetching, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - cache/redis: Redis-based cache implementation
// - fetch: Site flow registry and engine mux
// - fetch/html: Colly-based HTML listing engine
// - fetch/rss: Gofeed-based RSS listing engine
// - logger/logrus: Structured logger implementation
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include throttling, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # Fetch Engines
//
// Engines are built from the YAML site registry and multiplexed by site
// name:
//
//	flows, err := fetch.LoadSites("sites.yml")
//	engine := html.NewEngine(flows, deps)
//	mux := fetch.NewMux()
//	mux.Register("alpha", engine)
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Fetched listing", map[string]interface{}{
//	    "site": "alpha",
//	    "rows": 12,
//	})
//
package infrastructure
