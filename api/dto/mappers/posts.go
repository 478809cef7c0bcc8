package mappers

import (
	"portfolio-api/api/dto/responses"
	"portfolio-api/core/domain"
)

// ToPostResponse converts a domain FeedPost to a PostResponse DTO
func ToPostResponse(p *domain.FeedPost) responses.PostResponse {
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	return responses.PostResponse{
		Title:       p.Title,
		Link:        p.Link,
		PubDate:     p.PubDate,
		Description: p.Description,
		Content:     p.Content,
		GUID:        p.GUID,
		Categories:  categories,
		Thumbnail:   p.Thumbnail,
	}
}

// ToPostsResponse converts a feed result. The error text is only exposed
// for failed results.
func ToPostsResponse(result domain.Result[domain.FeedPost]) responses.PostsResponse {
	posts := make([]responses.PostResponse, 0, len(result.Items))
	for i := range result.Items {
		posts = append(posts, ToPostResponse(&result.Items[i]))
	}

	resp := responses.PostsResponse{
		Status: string(result.Status),
		Source: result.Source,
		Posts:  posts,
	}
	if result.Status == domain.StatusFailed && result.Err != nil {
		resp.Error = result.Err.Error()
	}
	return resp
}
