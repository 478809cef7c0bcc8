// ABOUTME: Response DTOs for article and project endpoints
// ABOUTME: Field names match what the site front end already consumes

package responses

import "encoding/json"

// ImageResponse is a resolved featured image
type ImageResponse struct {
	URL   string `json:"url" doc:"Absolute image URL"`
	Title string `json:"title" doc:"Asset title"`
}

// ArticleResponse represents a single article
type ArticleResponse struct {
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Excerpt       string          `json:"excerpt"`
	Body          json.RawMessage `json:"body" doc:"Markdown string or rich-text document"`
	PublishedDate string          `json:"publishedDate,omitempty"`
	Tags          []string        `json:"tags"`
	FeaturedImage *ImageResponse  `json:"featuredImage"`
}

// ProjectResponse represents a single project
type ProjectResponse struct {
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	TechStack     []string       `json:"techStack"`
	GithubURL     string         `json:"githubUrl"`
	DemoURL       string         `json:"demoUrl"`
	FeaturedImage *ImageResponse `json:"featuredImage"`
}

// ArticlesResponse is the body of GET /articles
type ArticlesResponse struct {
	Status   string            `json:"status" enum:"ok,empty,failed,unconfigured" doc:"Outcome of the upstream fetch"`
	Articles []ArticleResponse `json:"articles"`
}

// ProjectsResponse is the body of GET /projects
type ProjectsResponse struct {
	Status   string            `json:"status" enum:"ok,empty,failed,unconfigured" doc:"Outcome of the upstream fetch"`
	Projects []ProjectResponse `json:"projects"`
}
