// ABOUTME: Decoders for the three feed converter response shapes
// ABOUTME: Raw RSS and JSON Feed go through gofeed; rss2json items are decoded directly

package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"portfolio-api/core/domain"
	"portfolio-api/pkg/utils/html"
)

// rawPost is an item before normalization, whatever shape it came from
type rawPost struct {
	Title       string
	Link        string
	PubDate     string
	Description string
	Content     string
	GUID        string
	Categories  []string
	Thumbnail   string
}

type rss2jsonResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Items   []struct {
		Title       string   `json:"title"`
		PubDate     string   `json:"pubDate"`
		Link        string   `json:"link"`
		GUID        string   `json:"guid"`
		Thumbnail   string   `json:"thumbnail"`
		Description string   `json:"description"`
		Content     string   `json:"content"`
		Categories  []string `json:"categories"`
	} `json:"items"`
}

type envelopeResponse struct {
	Contents string `json:"contents"`
	Status   struct {
		HTTPCode int `json:"http_code"`
	} `json:"status"`
}

// errorPayload is returned when a converter answers 2xx but reports failure
type errorPayload struct {
	Message string
}

func (e *errorPayload) Error() string {
	return "converter reported an error: " + e.Message
}

func decodeRSS2JSON(body []byte) ([]rawPost, error) {
	var resp rss2jsonResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed rss2json response: %w", err)
	}
	if resp.Status != "ok" {
		msg := resp.Message
		if msg == "" {
			msg = "status " + resp.Status
		}
		return nil, &errorPayload{Message: msg}
	}

	posts := make([]rawPost, 0, len(resp.Items))
	for _, it := range resp.Items {
		posts = append(posts, rawPost{
			Title:       it.Title,
			Link:        it.Link,
			PubDate:     it.PubDate,
			Description: it.Description,
			Content:     it.Content,
			GUID:        it.GUID,
			Categories:  it.Categories,
			Thumbnail:   it.Thumbnail,
		})
	}
	return posts, nil
}

func decodeEnvelope(body []byte) ([]rawPost, error) {
	var resp envelopeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed envelope response: %w", err)
	}
	if code := resp.Status.HTTPCode; code != 0 && (code < 200 || code >= 300) {
		return nil, &errorPayload{Message: fmt.Sprintf("upstream feed returned %d", code)}
	}
	if strings.TrimSpace(resp.Contents) == "" {
		return nil, &errorPayload{Message: "empty contents"}
	}
	return parseFeed(resp.Contents)
}

func decodeJSONFeed(body []byte) ([]rawPost, error) {
	return parseFeed(string(body))
}

// parseFeed runs gofeed over RSS, Atom or JSON Feed text
func parseFeed(data string) ([]rawPost, error) {
	parsed, err := gofeed.NewParser().ParseString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]rawPost, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		p := rawPost{
			Title:       item.Title,
			Link:        item.Link,
			PubDate:     item.Published,
			Description: item.Description,
			Content:     item.Content,
			GUID:        item.GUID,
			Categories:  item.Categories,
		}
		if item.Image != nil {
			p.Thumbnail = item.Image.URL
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func decode(kind string, body []byte) ([]rawPost, error) {
	switch kind {
	case KindRSS2JSON:
		return decodeRSS2JSON(body)
	case KindEnvelope:
		return decodeEnvelope(body)
	case KindJSONFeed:
		return decodeJSONFeed(body)
	default:
		return nil, fmt.Errorf("unknown candidate kind %q", kind)
	}
}

// ParseRSS parses raw feed markup into normalized posts, dropping items
// without a title or link. Descriptions are truncated to 200 runes.
func ParseRSS(data []byte) ([]domain.FeedPost, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("empty feed content")
	}
	raw, err := parseFeed(string(data))
	if err != nil {
		return nil, err
	}
	return normalizeAll(raw, DefaultConfig().DescriptionLimit), nil
}

// normalize applies the display rules; ok is false when title or link is missing
func normalize(r rawPost, descriptionLimit int) (domain.FeedPost, bool) {
	title := html.StripHTML(r.Title)
	link := strings.TrimSpace(r.Link)
	if title == "" || link == "" {
		return domain.FeedPost{}, false
	}

	descSource := r.Description
	if strings.TrimSpace(descSource) == "" {
		descSource = r.Content
	}

	content := r.Content
	if strings.TrimSpace(content) == "" {
		content = r.Description
	}

	thumbnail := html.FirstImageSrc(content)
	if thumbnail == "" {
		thumbnail = html.FirstImageSrc(r.Description)
	}
	if thumbnail == "" {
		thumbnail = strings.TrimSpace(r.Thumbnail)
	}

	categories := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}

	return domain.FeedPost{
		Title:       title,
		Link:        link,
		PubDate:     strings.TrimSpace(r.PubDate),
		Description: html.Truncate(html.StripHTML(descSource), descriptionLimit),
		Content:     content,
		GUID:        strings.TrimSpace(r.GUID),
		Categories:  categories,
		Thumbnail:   thumbnail,
	}, true
}

func normalizeAll(raw []rawPost, descriptionLimit int) []domain.FeedPost {
	posts := make([]domain.FeedPost, 0, len(raw))
	for _, r := range raw {
		if p, ok := normalize(r, descriptionLimit); ok {
			posts = append(posts, p)
		}
	}
	return posts
}
