// ABOUTME: Wires configuration, logging, cache, HTTP client and services into one application
// ABOUTME: Shared by the serve, check and posts commands

package main

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/core/chat"
	"portfolio-api/core/content"
	"portfolio-api/core/feed"
	"portfolio-api/core/interfaces"
	"portfolio-api/core/workers"
	"portfolio-api/infrastructure/cache/memory"
	"portfolio-api/infrastructure/cache/redis"
	"portfolio-api/infrastructure/cache/sqlite"
	stdhttp "portfolio-api/infrastructure/http/standard"
	"portfolio-api/infrastructure/logger/structured"
	"portfolio-api/infrastructure/metrics"
	"portfolio-api/pkg/config"
	"portfolio-api/pkg/featureflags"
)

const (
	version = "1.0.0"

	// Upper bound for any single outbound call; adapters set tighter limits
	httpClientTimeout = 30 * time.Second
)

// application holds every wired component
type application struct {
	cfg    *config.Config
	logger interfaces.Logger
	flags  featureflags.Manager

	cache   interfaces.Cache
	closers []func() error

	content *content.Service
	feed    *feed.Service
	chat    *chat.Service
}

// newApplication builds the application from a validated configuration
func newApplication(cfg *config.Config, flags featureflags.Manager) (*application, error) {
	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	app := &application{
		cfg:    cfg,
		logger: logger,
		flags:  flags,
	}

	cache, closer, err := newCache(cfg, flags, logger)
	if err != nil {
		return nil, err
	}
	app.cache = cache
	if closer != nil {
		app.closers = append(app.closers, closer)
	}

	httpClient := stdhttp.NewStandardHTTPClient(httpClientTimeout, stdhttp.WithLogger(logger))

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}
	if flags.IsEnabled(context.Background(), featureflags.MetricsEnabled) {
		deps.Metrics = metrics.NewRecorder()
		metrics.Init(version, cfg.Server.Environment)
	}

	app.content = content.NewService(contentConfig(cfg), deps)
	app.feed = feed.NewService(feedConfig(cfg), deps)
	app.chat = chat.NewService(chatConfig(cfg), deps)

	return app, nil
}

// Close releases cache connections
func (a *application) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// refresher keeps the cache warm. It returns nil when there is no cache
// to refresh or the interval is zero.
func (a *application) refresher() *workers.Refresher {
	if a.cache == nil || a.cfg.Cache.RefreshInterval <= 0 {
		return nil
	}
	jobs := []workers.Job{
		{Name: "content", Run: a.content.Refresh},
		{Name: "posts", Run: a.feed.Refresh},
	}
	return workers.NewRefresher(jobs, workers.Config{
		Interval: a.cfg.Cache.RefreshInterval,
	}, a.logger)
}

// newCache selects the cache backend. A nil cache disables caching. Redis
// falls back to memory when the server cannot be reached.
func newCache(cfg *config.Config, flags featureflags.Manager, logger interfaces.Logger) (interfaces.Cache, func() error, error) {
	if !flags.IsEnabled(context.Background(), featureflags.CacheEnabled) {
		logger.Info("Caching disabled by feature flag", nil)
		return nil, nil, nil
	}

	switch cfg.Cache.Type {
	case "none":
		logger.Info("Caching disabled", nil)
		return nil, nil, nil
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), nil, nil
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, redisCache.Close, nil
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite cache: %w", err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, sqliteCache.Close, nil
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(), nil, nil
	}
}

func contentConfig(cfg *config.Config) content.Config {
	c := content.DefaultConfig()
	c.SpaceID = cfg.Content.SpaceID
	c.AccessToken = cfg.Content.AccessToken
	c.Timeout = cfg.Content.Timeout
	c.CacheTTL = cfg.Cache.TTL
	if cfg.Content.Environment != "" {
		c.Environment = cfg.Content.Environment
	}
	if cfg.Content.BaseURL != "" {
		c.BaseURL = cfg.Content.BaseURL
	}
	if cfg.Content.ArticleType != "" {
		c.ArticleType = cfg.Content.ArticleType
	}
	if cfg.Content.ProjectType != "" {
		c.ProjectType = cfg.Content.ProjectType
	}
	return c
}

func feedConfig(cfg *config.Config) feed.Config {
	c := feed.DefaultConfig()
	c.Username = feed.NormalizeUsername(cfg.Feed.Username)
	c.CandidateTimeout = cfg.Feed.CandidateTimeout
	c.MaxItems = cfg.Feed.MaxItems
	c.CacheTTL = cfg.Cache.TTL
	if cfg.Feed.FeedURLTemplate != "" {
		c.FeedURLTemplate = cfg.Feed.FeedURLTemplate
	}
	if len(cfg.Feed.Candidates) > 0 {
		c.Candidates = make([]feed.Candidate, 0, len(cfg.Feed.Candidates))
		for _, fc := range cfg.Feed.Candidates {
			c.Candidates = append(c.Candidates, feed.Candidate{
				Name:        fc.Name,
				Kind:        fc.Kind,
				URLTemplate: fc.URLTemplate,
			})
		}
	}
	return c
}

func chatConfig(cfg *config.Config) chat.Config {
	return chat.Config{
		BaseURL:      cfg.Chat.BaseURL,
		Endpoint:     cfg.Chat.Endpoint,
		APIKey:       cfg.Chat.APIKey,
		Model:        cfg.Chat.Model,
		SystemPrompt: cfg.Chat.SystemPrompt,
		Temperature:  chat.Float64(cfg.Chat.Temperature),
		MaxTokens:    cfg.Chat.MaxTokens,
		Timeout:      cfg.Chat.Timeout,
	}
}
