// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: Single-file SQLite cache for small deployments
// - http/standard: Standard library HTTP client with retry logic
// - logger/structured: logrus logger with optional rotating file output
// - metrics: Prometheus collectors for requests and upstream fetches
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
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// GET requests are retried on transport errors and 5xx responses:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithLogger(logger))
//	resp, err := client.Get(ctx, "https://example.com", nil)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Fetched articles", map[string]interface{}{
//	    "count":  12,
//	    "source": "contentful",
//	})
package infrastructure
