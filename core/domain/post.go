// ABOUTME: FeedPost domain model represents a normalized entry from the external blog feed
// ABOUTME: Title and link are mandatory; everything else defaults to empty values

package domain

// FeedPost is a normalized blog feed entry
type FeedPost struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate"`

	// Description is plain text, stripped of HTML and truncated
	Description string `json:"description"`

	// Content is the raw HTML content as delivered by the feed
	Content string `json:"content"`

	GUID       string   `json:"guid"`
	Categories []string `json:"categories"`

	// Thumbnail is the first image found in the content, if any
	Thumbnail string `json:"thumbnail,omitempty"`
}

// IsValid reports whether the post carries the fields required for display
func (p *FeedPost) IsValid() bool {
	return p.Title != "" && p.Link != ""
}
