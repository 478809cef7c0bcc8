// ABOUTME: Configuration management with defaults, an optional YAML file and environment overrides
// ABOUTME: Defines configuration structures for the server, cache, upstream adapters and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Content contains the content store (Contentful) settings
	Content ContentConfig `yaml:"content"`

	// Feed contains the blog feed settings
	Feed FeedConfig `yaml:"feed"`

	// Chat contains the language-model proxy settings
	Chat ChatConfig `yaml:"chat"`

	// Log contains logging settings
	Log LogConfig `yaml:"log"`

	// RateLimit contains per-IP request limits
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// AllowedOrigins is the CORS origin list
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Environment labels metrics and logs (development, production, ...)
	Environment string `yaml:"environment"`

	// TrustProxy takes the client IP from X-Real-IP / X-Forwarded-For.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool `yaml:"trust_proxy"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite/none)
	Type string `yaml:"type"`

	// TTL is how long normalized upstream responses are kept
	TTL time.Duration `yaml:"ttl"`

	// RefreshInterval re-fetches cached data in the background. Zero disables it.
	RefreshInterval time.Duration `yaml:"refresh_interval"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// ContentConfig holds content store settings
type ContentConfig struct {
	SpaceID     string        `yaml:"space_id"`
	AccessToken string        `yaml:"access_token"`
	Environment string        `yaml:"environment"`
	BaseURL     string        `yaml:"base_url"`
	ArticleType string        `yaml:"article_type"`
	ProjectType string        `yaml:"project_type"`
	Timeout     time.Duration `yaml:"timeout"`
}

// FeedCandidate is one feed-to-JSON endpoint. URLTemplate contains a single
// %s which receives the query-escaped feed URL.
type FeedCandidate struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	URLTemplate string `yaml:"url"`
}

// FeedConfig holds blog feed settings
type FeedConfig struct {
	Username         string          `yaml:"username"`
	FeedURLTemplate  string          `yaml:"feed_url"`
	CandidateTimeout time.Duration   `yaml:"candidate_timeout"`
	MaxItems         int             `yaml:"max_items"`
	Candidates       []FeedCandidate `yaml:"candidates"`
}

// ChatConfig holds language-model proxy settings
type ChatConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Endpoint     string        `yaml:"endpoint"`
	APIKey       string        `yaml:"api_key"`
	Model        string        `yaml:"model"`
	SystemPrompt string        `yaml:"system_prompt"`
	Temperature  float64       `yaml:"temperature"`
	MaxTokens    int           `yaml:"max_tokens"`
	Timeout      time.Duration `yaml:"timeout"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// File, when set, enables rotating file output
	File string `yaml:"file"`
}

// RateLimitConfig holds per-IP request limits
type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// Candidate kinds understood by the feed adapter
const (
	CandidateKindRSS2JSON = "rss2json"
	CandidateKindEnvelope = "envelope"
	CandidateKindJSONFeed = "jsonfeed"
)

// DefaultFeedCandidates is the ordered fallback list of feed-to-JSON endpoints
func DefaultFeedCandidates() []FeedCandidate {
	return []FeedCandidate{
		{Name: "rss2json", Kind: CandidateKindRSS2JSON, URLTemplate: "https://api.rss2json.com/v1/api.json?rss_url=%s"},
		{Name: "allorigins", Kind: CandidateKindEnvelope, URLTemplate: "https://api.allorigins.win/get?url=%s"},
		{Name: "feed2json", Kind: CandidateKindJSONFeed, URLTemplate: "https://www.toptal.com/developers/feed2json/convert?url=%s"},
	}
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    45 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			AllowedOrigins:  []string{"*"},
			Environment:     "development",
		},
		Cache: CacheConfig{
			Type:            "memory",
			TTL:             time.Hour,
			RefreshInterval: 50 * time.Minute,
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
			SQLite: SQLiteConfig{
				Path: "cache.db",
			},
		},
		Content: ContentConfig{
			Environment: "master",
			BaseURL:     "https://cdn.contentful.com",
			ArticleType: "blogPost",
			ProjectType: "projects",
			Timeout:     15 * time.Second,
		},
		Feed: FeedConfig{
			FeedURLTemplate:  "https://medium.com/@%s/feed",
			CandidateTimeout: 10 * time.Second,
			MaxItems:         10,
			Candidates:       DefaultFeedCandidates(),
		},
		Chat: ChatConfig{
			Endpoint:    "/v1/chat/completions",
			Model:       "gpt-3.5-turbo",
			Temperature: 0.7,
			MaxTokens:   200,
			Timeout:     30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
		},
	}
}

// LoadFromEnv loads configuration from environment variables, reading the
// YAML file named by CONFIG_FILE first when it is set
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

// Load applies defaults, then the YAML file at path (if any), then the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.Environment = getEnvOrDefault("APP_ENV", c.Server.Environment)
	c.Server.TrustProxy = getEnvAsBoolOrDefault("TRUST_PROXY", c.Server.TrustProxy)

	c.Cache.Type = getEnvOrDefault("CACHE_TYPE", c.Cache.Type)
	c.Cache.TTL = getEnvAsDurationOrDefault("CACHE_TTL", c.Cache.TTL)
	c.Cache.RefreshInterval = getEnvAsDurationOrDefault("CACHE_REFRESH_INTERVAL", c.Cache.RefreshInterval)
	c.Cache.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", c.Cache.Redis.Address)
	c.Cache.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Cache.Redis.Password)
	c.Cache.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", c.Cache.Redis.DB)
	c.Cache.SQLite.Path = getEnvOrDefault("SQLITE_PATH", c.Cache.SQLite.Path)

	c.Content.SpaceID = getEnvOrDefault("CONTENTFUL_SPACE_ID", c.Content.SpaceID)
	c.Content.AccessToken = getEnvOrDefault("CONTENTFUL_ACCESS_TOKEN", c.Content.AccessToken)
	c.Content.Environment = getEnvOrDefault("CONTENTFUL_ENVIRONMENT", c.Content.Environment)

	c.Feed.Username = getEnvOrDefault("MEDIUM_USERNAME", c.Feed.Username)
	c.Feed.CandidateTimeout = getEnvAsDurationOrDefault("FEED_CANDIDATE_TIMEOUT", c.Feed.CandidateTimeout)

	c.Chat.BaseURL = getEnvOrDefault("CHAT_API_BASE_URL", c.Chat.BaseURL)
	c.Chat.Endpoint = getEnvOrDefault("CHAT_ENDPOINT", c.Chat.Endpoint)
	c.Chat.APIKey = getEnvOrDefault("CHAT_API_KEY", c.Chat.APIKey)
	c.Chat.Model = getEnvOrDefault("CHAT_MODEL", c.Chat.Model)

	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvOrDefault("LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnvOrDefault("LOG_FILE", c.Log.File)

	c.RateLimit.Requests = getEnvAsIntOrDefault("RATE_LIMIT", c.RateLimit.Requests)
	c.RateLimit.Window = getEnvAsDurationOrDefault("RATE_WINDOW", c.RateLimit.Window)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("90s") or plain seconds ("3600")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// ContentConfigured reports whether both content store credentials are present
func (c *Config) ContentConfigured() bool {
	return c.Content.SpaceID != "" && c.Content.AccessToken != ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite", "none":
	default:
		return errors.New("cache type must be 'memory', 'redis', 'sqlite' or 'none'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Cache.RefreshInterval < 0 {
		return errors.New("cache refresh interval cannot be negative")
	}

	if c.Feed.CandidateTimeout <= 0 {
		return errors.New("feed candidate timeout must be positive")
	}

	if len(c.Feed.Candidates) == 0 {
		return errors.New("at least one feed candidate is required")
	}

	for _, candidate := range c.Feed.Candidates {
		switch candidate.Kind {
		case CandidateKindRSS2JSON, CandidateKindEnvelope, CandidateKindJSONFeed:
		default:
			return fmt.Errorf("feed candidate %q has unknown kind %q", candidate.Name, candidate.Kind)
		}
		if candidate.URLTemplate == "" {
			return fmt.Errorf("feed candidate %q has no url", candidate.Name)
		}
	}

	if c.RateLimit.Requests < 0 {
		return errors.New("rate limit cannot be negative")
	}

	return nil
}
