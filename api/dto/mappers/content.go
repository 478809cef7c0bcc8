// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"portfolio-api/api/dto/responses"
	"portfolio-api/core/domain"
)

// ToImageResponse converts a domain Image; nil stays nil
func ToImageResponse(img *domain.Image) *responses.ImageResponse {
	if img == nil {
		return nil
	}
	return &responses.ImageResponse{URL: img.URL, Title: img.Title}
}

// ToArticleResponse converts a domain Article to an ArticleResponse DTO
func ToArticleResponse(a *domain.Article) *responses.ArticleResponse {
	if a == nil {
		return nil
	}

	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return &responses.ArticleResponse{
		Title:         a.Title,
		Slug:          a.Slug,
		Excerpt:       a.Excerpt,
		Body:          a.Body,
		PublishedDate: a.PublishedDate,
		Tags:          tags,
		FeaturedImage: ToImageResponse(a.FeaturedImage),
	}
}

// ToProjectResponse converts a domain Project to a ProjectResponse DTO
func ToProjectResponse(p *domain.Project) *responses.ProjectResponse {
	if p == nil {
		return nil
	}

	stack := p.TechStack
	if stack == nil {
		stack = []string{}
	}

	return &responses.ProjectResponse{
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		TechStack:     stack,
		GithubURL:     p.GithubURL,
		DemoURL:       p.DemoURL,
		FeaturedImage: ToImageResponse(p.FeaturedImage),
	}
}

// ToArticlesResponse converts an adapter result into the list response
func ToArticlesResponse(result domain.Result[domain.Article]) responses.ArticlesResponse {
	articles := make([]responses.ArticleResponse, 0, len(result.Items))
	for i := range result.Items {
		articles = append(articles, *ToArticleResponse(&result.Items[i]))
	}
	return responses.ArticlesResponse{
		Status:   string(result.Status),
		Articles: articles,
	}
}

// ToProjectsResponse converts an adapter result into the list response
func ToProjectsResponse(result domain.Result[domain.Project]) responses.ProjectsResponse {
	projects := make([]responses.ProjectResponse, 0, len(result.Items))
	for i := range result.Items {
		projects = append(projects, *ToProjectResponse(&result.Items[i]))
	}
	return responses.ProjectsResponse{
		Status:   string(result.Status),
		Projects: projects,
	}
}
