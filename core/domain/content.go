// ABOUTME: Content domain models for articles and projects sourced from the content store
// ABOUTME: Records are request-scoped snapshots and are never written back upstream

package domain

import (
	"encoding/json"
	"errors"
)

// Fallback slugs used when a title yields no slug characters at all.
const (
	DefaultArticleSlug = "blog-post"
	DefaultProjectSlug = "project"
)

// emptyBody is the body assigned to articles with neither content nor body.
var emptyBody = json.RawMessage(`""`)

// Image is a resolved asset reference
type Image struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Article represents a blog article from the content store
type Article struct {
	// Title is required; entries without one are discarded during mapping
	Title string `json:"title"`

	// Slug is taken from the entry or derived from Title
	Slug string `json:"slug"`

	Excerpt string `json:"excerpt"`

	// Body is either a JSON string (markdown/HTML) or a rich-text document.
	// It is passed through untouched.
	Body json.RawMessage `json:"body"`

	// PublishedDate is the upstream ISO date string, if any
	PublishedDate string `json:"publishedDate,omitempty"`

	Tags          []string `json:"tags"`
	FeaturedImage *Image   `json:"featuredImage"`
}

// NewArticle builds an article applying the documented defaults
func NewArticle(title, slug string) (*Article, error) {
	a := &Article{
		Title: title,
		Slug:  slug,
	}
	a.ApplyDefaults()

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// ApplyDefaults fills the slug, body and tags when the upstream omitted them
func (a *Article) ApplyDefaults() {
	if a.Slug == "" {
		a.Slug = SlugOrDefault(a.Title, DefaultArticleSlug)
	}
	if len(a.Body) == 0 || string(a.Body) == "null" {
		a.Body = emptyBody
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
}

// Validate checks the title and slug invariants
func (a *Article) Validate() error {
	if a.Title == "" {
		return errors.New("article title cannot be empty")
	}
	if a.Slug == "" {
		return errors.New("article slug cannot be empty")
	}
	return nil
}

// BodyText returns the body as plain text when it is a JSON string.
// The second result is false for rich-text documents.
func (a *Article) BodyText() (string, bool) {
	var s string
	if err := json.Unmarshal(a.Body, &s); err != nil {
		return "", false
	}
	return s, true
}

// Project represents a portfolio project from the content store
type Project struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	TechStack     []string `json:"techStack"`
	GithubURL     string   `json:"githubUrl"`
	DemoURL       string   `json:"demoUrl"`
	FeaturedImage *Image   `json:"featuredImage"`
}

// NewProject builds a project applying the documented defaults
func NewProject(title, slug string) (*Project, error) {
	p := &Project{
		Title: title,
		Slug:  slug,
	}
	p.ApplyDefaults()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyDefaults fills the slug and tech stack when the upstream omitted them
func (p *Project) ApplyDefaults() {
	if p.Slug == "" {
		p.Slug = SlugOrDefault(p.Title, DefaultProjectSlug)
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
}

// Validate checks the title and slug invariants
func (p *Project) Validate() error {
	if p.Title == "" {
		return errors.New("project title cannot be empty")
	}
	if p.Slug == "" {
		return errors.New("project slug cannot be empty")
	}
	return nil
}
