// ABOUTME: Contentful Delivery API wire types and entry-to-domain mapping
// ABOUTME: Resolves featured image references in all three shapes the API can return

package content

import (
	"bytes"
	"encoding/json"
	"strings"

	"portfolio-api/core/domain"
)

type sys struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	LinkType string `json:"linkType"`
}

type entry struct {
	Sys    sys                        `json:"sys"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type assetFile struct {
	URL string `json:"url"`
}

type asset struct {
	Sys    sys `json:"sys"`
	Fields struct {
		Title string     `json:"title"`
		File  *assetFile `json:"file"`
	} `json:"fields"`
}

// entriesResponse is the body of GET /entries. Error payloads share the
// top-level sys object with type "Error".
type entriesResponse struct {
	Sys      sys     `json:"sys"`
	Message  string  `json:"message"`
	Items    []entry `json:"items"`
	Includes struct {
		Asset []asset `json:"Asset"`
	} `json:"includes"`
}

// assetIndex maps asset IDs from includes.Asset
type assetIndex map[string]asset

func newAssetIndex(assets []asset) assetIndex {
	idx := make(assetIndex, len(assets))
	for _, a := range assets {
		if a.Sys.ID != "" {
			idx[a.Sys.ID] = a
		}
	}
	return idx
}

// resolveImage turns a featuredImage field into an Image. It accepts a link
// object, an array whose first element is a link or asset, or an inlined asset.
func (idx assetIndex) resolveImage(raw json.RawMessage) *domain.Image {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
			return nil
		}
		return idx.resolveImage(list[0])
	}

	var a asset
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil
	}

	if a.Fields.File == nil && a.Sys.Type == "Link" {
		if a.Sys.LinkType != "" && a.Sys.LinkType != "Asset" {
			return nil
		}
		linked, ok := idx[a.Sys.ID]
		if !ok {
			return nil
		}
		a = linked
	}

	if a.Fields.File == nil || a.Fields.File.URL == "" {
		return nil
	}

	return &domain.Image{
		URL:   absoluteURL(a.Fields.File.URL),
		Title: a.Fields.Title,
	}
}

// absoluteURL adds the scheme the asset CDN omits
func absoluteURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func stringsField(fields map[string]json.RawMessage, key string) []string {
	out := []string{}
	raw, ok := fields[key]
	if !ok {
		return out
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return out
	}
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// bodyField returns the first of keys holding a non-empty value, untouched
func bodyField(fields map[string]json.RawMessage, keys ...string) json.RawMessage {
	for _, key := range keys {
		raw := bytes.TrimSpace(fields[key])
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`)) {
			continue
		}
		return json.RawMessage(raw)
	}
	return nil
}

// toArticle maps an entry; ok is false when the entry has no title
func (idx assetIndex) toArticle(e entry) (domain.Article, bool) {
	a := domain.Article{
		Title:         strings.TrimSpace(stringField(e.Fields, "title")),
		Slug:          stringField(e.Fields, "slug"),
		Excerpt:       stringField(e.Fields, "excerpt"),
		Body:          bodyField(e.Fields, "content", "body"),
		PublishedDate: stringField(e.Fields, "publishedDate"),
		Tags:          stringsField(e.Fields, "tags"),
		FeaturedImage: idx.resolveImage(e.Fields["featuredImage"]),
	}
	if a.Title == "" {
		return domain.Article{}, false
	}
	a.ApplyDefaults()
	return a, true
}

// toProject maps an entry; ok is false when the entry has no title
func (idx assetIndex) toProject(e entry) (domain.Project, bool) {
	p := domain.Project{
		Title:         strings.TrimSpace(stringField(e.Fields, "title")),
		Slug:          stringField(e.Fields, "slug"),
		Description:   stringField(e.Fields, "description"),
		TechStack:     stringsField(e.Fields, "techStack"),
		GithubURL:     stringField(e.Fields, "githubUrl"),
		DemoURL:       stringField(e.Fields, "demoUrl"),
		FeaturedImage: idx.resolveImage(e.Fields["featuredImage"]),
	}
	if p.Title == "" {
		return domain.Project{}, false
	}
	p.ApplyDefaults()
	return p, true
}
