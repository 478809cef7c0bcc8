// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Handlers depend on these contracts rather than on concrete adapters

package interfaces

import (
	"context"

	"portfolio-api/core/domain"
)

// ContentService exposes normalized articles and projects from the content store
type ContentService interface {
	Articles(ctx context.Context) domain.Result[domain.Article]
	Projects(ctx context.Context) domain.Result[domain.Project]
	ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	ProjectBySlug(ctx context.Context, slug string) (*domain.Project, error)
}

// FeedService exposes normalized blog feed posts
type FeedService interface {
	Posts(ctx context.Context, username string) domain.Result[domain.FeedPost]
}

// ChatService forwards visitor messages to a language model
type ChatService interface {
	Reply(ctx context.Context, message string, history []domain.ChatMessage) (string, error)
}
