package feed

import "time"

// Candidate kinds, one per response shape
const (
	// KindRSS2JSON is {status, message, items:[...]} with pre-parsed items
	KindRSS2JSON = "rss2json"

	// KindEnvelope is {contents: "<rss ...>"} wrapping the raw feed markup
	KindEnvelope = "envelope"

	// KindJSONFeed is a JSON Feed document
	KindJSONFeed = "jsonfeed"
)

// Candidate is one feed-to-JSON endpoint. URLTemplate holds a single %s
// that receives the query-escaped feed URL.
type Candidate struct {
	Name        string
	Kind        string
	URLTemplate string
}

// Config holds the feed adapter settings
type Config struct {
	// Username is the site owner's handle. Refresh fetches it and only its
	// posts are cached.
	Username string

	// FeedURLTemplate builds the feed URL from a handle
	FeedURLTemplate string

	// Candidates are tried in order until one yields posts
	Candidates []Candidate

	// CandidateTimeout bounds each candidate attempt
	CandidateTimeout time.Duration

	// DescriptionLimit is the rune limit for plain-text descriptions
	DescriptionLimit int

	// MaxItems caps the number of returned posts; zero means no cap
	MaxItems int

	CacheTTL time.Duration
}

// DefaultCandidates is the ordered fallback list of public converters
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "rss2json", Kind: KindRSS2JSON, URLTemplate: "https://api.rss2json.com/v1/api.json?rss_url=%s"},
		{Name: "allorigins", Kind: KindEnvelope, URLTemplate: "https://api.allorigins.win/get?url=%s"},
		{Name: "feed2json", Kind: KindJSONFeed, URLTemplate: "https://www.toptal.com/developers/feed2json/convert?url=%s"},
	}
}

// DefaultConfig returns the adapter defaults without a username
func DefaultConfig() Config {
	return Config{
		FeedURLTemplate:  "https://medium.com/@%s/feed",
		Candidates:       DefaultCandidates(),
		CandidateTimeout: 10 * time.Second,
		DescriptionLimit: 200,
		MaxItems:         10,
		CacheTTL:         time.Hour,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FeedURLTemplate == "" {
		c.FeedURLTemplate = d.FeedURLTemplate
	}
	if len(c.Candidates) == 0 {
		c.Candidates = d.Candidates
	}
	if c.CandidateTimeout <= 0 {
		c.CandidateTimeout = d.CandidateTimeout
	}
	if c.DescriptionLimit <= 0 {
		c.DescriptionLimit = d.DescriptionLimit
	}
	if c.MaxItems < 0 {
		c.MaxItems = 0
	}
	if c.CacheTTL < 0 {
		c.CacheTTL = 0
	}
	return c
}
