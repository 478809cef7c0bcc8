// ABOUTME: Blog feed handler for the Huma API
// ABOUTME: Returns normalized posts along with the proxy that produced them

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"portfolio-api/api/dto/mappers"
	"portfolio-api/api/dto/responses"
	"portfolio-api/core/interfaces"
)

// PostsHandler handles blog feed requests
type PostsHandler struct {
	feedService     interfaces.FeedService
	defaultUsername string
}

// NewPostsHandler creates a new posts handler. defaultUsername is used when
// the request carries no username.
func NewPostsHandler(feedService interfaces.FeedService, defaultUsername string) *PostsHandler {
	return &PostsHandler{feedService: feedService, defaultUsername: defaultUsername}
}

// RegisterRoutes registers the posts route
func (h *PostsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPosts",
		Method:      http.MethodGet,
		Path:        "/posts",
		Summary:     "List blog posts",
		Description: "Fetches the blog feed through the configured proxies in order and returns the first non-empty answer.",
		Tags:        []string{"Posts"},
	}, h.ListPosts)
}

// ListPostsInput defines the input for the ListPosts operation
type ListPostsInput struct {
	Username string `query:"username" maxLength:"100" doc:"Feed username; defaults to the configured one"`
}

// ListPostsOutput defines the output for the ListPosts operation
type ListPostsOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         responses.PostsResponse
}

// ListPosts handles GET /posts
func (h *PostsHandler) ListPosts(ctx context.Context, input *ListPostsInput) (*ListPostsOutput, error) {
	username := input.Username
	if strings.TrimSpace(username) == "" {
		username = h.defaultUsername
	}

	result := h.feedService.Posts(ctx, username)
	return &ListPostsOutput{
		CacheControl: cacheControlFor(result.Status),
		Body:         mappers.ToPostsResponse(result),
	}, nil
}
