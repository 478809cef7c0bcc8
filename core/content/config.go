package content

import "time"

// Config holds the content store connection settings
type Config struct {
	SpaceID     string
	AccessToken string
	Environment string
	BaseURL     string

	// ArticleType and ProjectType are the content type IDs queried for each kind
	ArticleType string
	ProjectType string

	// Limit caps the number of entries requested per kind
	Limit int

	// Timeout bounds a single upstream call; zero leaves it to the HTTP client
	Timeout time.Duration

	// CacheTTL is how long successful results are kept
	CacheTTL time.Duration
}

// DefaultConfig returns the Contentful Delivery API defaults without credentials
func DefaultConfig() Config {
	return Config{
		Environment: "master",
		BaseURL:     "https://cdn.contentful.com",
		ArticleType: "blogPost",
		ProjectType: "projects",
		Limit:       100,
		CacheTTL:    time.Hour,
	}
}

// Configured reports whether both credentials are present
func (c Config) Configured() bool {
	return c.SpaceID != "" && c.AccessToken != ""
}

// Missing names the credentials that are absent
func (c Config) Missing() []string {
	var missing []string
	if c.SpaceID == "" {
		missing = append(missing, "CONTENTFUL_SPACE_ID")
	}
	if c.AccessToken == "" {
		missing = append(missing, "CONTENTFUL_ACCESS_TOKEN")
	}
	return missing
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Environment == "" {
		c.Environment = d.Environment
	}
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.ArticleType == "" {
		c.ArticleType = d.ArticleType
	}
	if c.ProjectType == "" {
		c.ProjectType = d.ProjectType
	}
	if c.Limit <= 0 {
		c.Limit = d.Limit
	}
	if c.CacheTTL < 0 {
		c.CacheTTL = 0
	}
	return c
}
