package handlers

import (
	"context"

	"portfolio-api/core/content"
	"portfolio-api/core/domain"
)

type mockContentService struct {
	articlesFunc      func(ctx context.Context) domain.Result[domain.Article]
	projectsFunc      func(ctx context.Context) domain.Result[domain.Project]
	articleBySlugFunc func(ctx context.Context, slug string) (*domain.Article, error)
	projectBySlugFunc func(ctx context.Context, slug string) (*domain.Project, error)
}

func (m *mockContentService) Articles(ctx context.Context) domain.Result[domain.Article] {
	if m.articlesFunc != nil {
		return m.articlesFunc(ctx)
	}
	return domain.Unconfigured[domain.Article]()
}

func (m *mockContentService) Projects(ctx context.Context) domain.Result[domain.Project] {
	if m.projectsFunc != nil {
		return m.projectsFunc(ctx)
	}
	return domain.Unconfigured[domain.Project]()
}

func (m *mockContentService) ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if m.articleBySlugFunc != nil {
		return m.articleBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockContentService) ProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	if m.projectBySlugFunc != nil {
		return m.projectBySlugFunc(ctx, slug)
	}
	return nil, nil
}

type mockFeedService struct {
	postsFunc func(ctx context.Context, username string) domain.Result[domain.FeedPost]
}

func (m *mockFeedService) Posts(ctx context.Context, username string) domain.Result[domain.FeedPost] {
	if m.postsFunc != nil {
		return m.postsFunc(ctx, username)
	}
	return domain.Unconfigured[domain.FeedPost]()
}

type mockChatService struct {
	replyFunc func(ctx context.Context, message string, history []domain.ChatMessage) (string, error)
}

func (m *mockChatService) Reply(ctx context.Context, message string, history []domain.ChatMessage) (string, error) {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, message, history)
	}
	return "", nil
}

type mockDiagnoser struct {
	diagnostics content.Diagnostics
	calls       int
}

func (m *mockDiagnoser) Diagnose(ctx context.Context) content.Diagnostics {
	m.calls++
	return m.diagnostics
}
