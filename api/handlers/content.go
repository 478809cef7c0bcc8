// ABOUTME: Content handlers for the Huma API
// ABOUTME: Serves normalized articles and projects from the content store

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"portfolio-api/api/dto/mappers"
	"portfolio-api/api/dto/responses"
	"portfolio-api/core/domain"
	"portfolio-api/core/interfaces"
)

const (
	// Matches the one-hour revalidation of the content cache
	publicCacheControl  = "public, max-age=3600"
	noStoreCacheControl = "no-store"
)

// ContentHandler handles article and project requests
type ContentHandler struct {
	contentService interfaces.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService interfaces.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// RegisterRoutes registers all content routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/articles",
		Summary:     "List articles",
		Description: "Returns published articles, newest first. Upstream failures are reported in status, never as a 5xx.",
		Tags:        []string{"Content"},
	}, h.ListArticles)

	huma.Register(api, huma.Operation{
		OperationID: "getArticle",
		Method:      http.MethodGet,
		Path:        "/articles/{slug}",
		Summary:     "Get an article by slug",
		Tags:        []string{"Content"},
	}, h.GetArticle)

	huma.Register(api, huma.Operation{
		OperationID: "listProjects",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List projects",
		Description: "Returns portfolio projects, newest first.",
		Tags:        []string{"Content"},
	}, h.ListProjects)

	huma.Register(api, huma.Operation{
		OperationID: "getProject",
		Method:      http.MethodGet,
		Path:        "/projects/{slug}",
		Summary:     "Get a project by slug",
		Tags:        []string{"Content"},
	}, h.GetProject)
}

// ListArticlesOutput defines the output for the ListArticles operation
type ListArticlesOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         responses.ArticlesResponse
}

// ListArticles handles GET /articles
func (h *ContentHandler) ListArticles(ctx context.Context, _ *struct{}) (*ListArticlesOutput, error) {
	result := h.contentService.Articles(ctx)
	return &ListArticlesOutput{
		CacheControl: cacheControlFor(result.Status),
		Body:         mappers.ToArticlesResponse(result),
	}, nil
}

// SlugInput identifies a single article or project
type SlugInput struct {
	Slug string `path:"slug" minLength:"1" maxLength:"200" doc:"URL slug"`
}

// GetArticleOutput defines the output for the GetArticle operation
type GetArticleOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         responses.ArticleResponse
}

// GetArticle handles GET /articles/{slug}
func (h *ContentHandler) GetArticle(ctx context.Context, input *SlugInput) (*GetArticleOutput, error) {
	article, err := h.contentService.ArticleBySlug(ctx, input.Slug)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetArticleOutput{
		CacheControl: publicCacheControl,
		Body:         *mappers.ToArticleResponse(article),
	}, nil
}

// ListProjectsOutput defines the output for the ListProjects operation
type ListProjectsOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         responses.ProjectsResponse
}

// ListProjects handles GET /projects
func (h *ContentHandler) ListProjects(ctx context.Context, _ *struct{}) (*ListProjectsOutput, error) {
	result := h.contentService.Projects(ctx)
	return &ListProjectsOutput{
		CacheControl: cacheControlFor(result.Status),
		Body:         mappers.ToProjectsResponse(result),
	}, nil
}

// GetProjectOutput defines the output for the GetProject operation
type GetProjectOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         responses.ProjectResponse
}

// GetProject handles GET /projects/{slug}
func (h *ContentHandler) GetProject(ctx context.Context, input *SlugInput) (*GetProjectOutput, error) {
	project, err := h.contentService.ProjectBySlug(ctx, input.Slug)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetProjectOutput{
		CacheControl: publicCacheControl,
		Body:         *mappers.ToProjectResponse(project),
	}, nil
}

// Failed and unconfigured lists must not be cached by browsers or CDNs.
func cacheControlFor(status domain.FetchStatus) string {
	switch status {
	case domain.StatusOK, domain.StatusEmpty:
		return publicCacheControl
	default:
		return noStoreCacheControl
	}
}
