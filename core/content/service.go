// ABOUTME: Content service fetches articles and projects from the content store
// ABOUTME: Never fails list calls; the outcome travels in domain.Result instead

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"portfolio-api/core/domain"
	coreerrors "portfolio-api/core/errors"
	"portfolio-api/core/interfaces"
)

const (
	apiName = "contentful"

	kindArticles = "articles"
	kindProjects = "projects"

	articleOrder = "-fields.publishedDate"
	projectOrder = "-sys.createdAt"

	// maxResponseBytes bounds the body read from the content store
	maxResponseBytes = 10 << 20
)

// cacheMode selects how fetchKind uses the cache
type cacheMode int

const (
	cacheReadWrite cacheMode = iota

	// cacheWriteOnly always fetches, then stores
	cacheWriteOnly

	// cacheBypass never touches the cache
	cacheBypass
)

// Service is the content store adapter
type Service struct {
	cfg  Config
	deps interfaces.Dependencies
}

// NewService creates a content service. Zero-valued config fields take the
// DefaultConfig values; credentials are never defaulted.
func NewService(cfg Config, deps interfaces.Dependencies) *Service {
	return &Service{
		cfg:  cfg.withDefaults(),
		deps: deps.WithDefaults(),
	}
}

// Configured reports whether the content store credentials are present
func (s *Service) Configured() bool {
	return s.cfg.Configured()
}

// Articles returns all articles, newest first
func (s *Service) Articles(ctx context.Context) domain.Result[domain.Article] {
	return fetchKind(ctx, s, kindArticles, s.cfg.ArticleType, articleOrder, cacheReadWrite, mapArticles)
}

// Projects returns all projects, newest first
func (s *Service) Projects(ctx context.Context) domain.Result[domain.Project] {
	return fetchKind(ctx, s, kindProjects, s.cfg.ProjectType, projectOrder, cacheReadWrite, mapProjects)
}

// Refresh re-fetches both kinds and overwrites the cached copies. Failures
// leave the previous cache entries in place.
func (s *Service) Refresh(ctx context.Context) domain.FetchStatus {
	articles := fetchKind(ctx, s, kindArticles, s.cfg.ArticleType, articleOrder, cacheWriteOnly, mapArticles)
	projects := fetchKind(ctx, s, kindProjects, s.cfg.ProjectType, projectOrder, cacheWriteOnly, mapProjects)
	return worstStatus(articles.Status, projects.Status)
}

// FetchArticles returns articles or an empty slice on any failure
func (s *Service) FetchArticles(ctx context.Context) []domain.Article {
	return s.Articles(ctx).Items
}

// FetchProjects returns projects or an empty slice on any failure
func (s *Service) FetchProjects(ctx context.Context) []domain.Project {
	return s.Projects(ctx).Items
}

// ArticleBySlug finds a single article
func (s *Service) ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	result := s.Articles(ctx)
	if result.Status == domain.StatusUnconfigured {
		return nil, &coreerrors.ConfigurationError{Component: apiName, Missing: s.cfg.Missing()}
	}
	for i := range result.Items {
		if result.Items[i].Slug == slug {
			return &result.Items[i], nil
		}
	}
	if result.Status == domain.StatusFailed {
		return nil, result.Err
	}
	return nil, &coreerrors.NotFoundError{Resource: "article", ID: slug}
}

// ProjectBySlug finds a single project
func (s *Service) ProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	result := s.Projects(ctx)
	if result.Status == domain.StatusUnconfigured {
		return nil, &coreerrors.ConfigurationError{Component: apiName, Missing: s.cfg.Missing()}
	}
	for i := range result.Items {
		if result.Items[i].Slug == slug {
			return &result.Items[i], nil
		}
	}
	if result.Status == domain.StatusFailed {
		return nil, result.Err
	}
	return nil, &coreerrors.NotFoundError{Resource: "project", ID: slug}
}

// fetchKind runs the shared cache/fetch/map pipeline for one content kind
func fetchKind[T any](
	ctx context.Context,
	s *Service,
	kind, contentType, order string,
	mode cacheMode,
	mapFn func(*entriesResponse, interfaces.Logger) []T,
) domain.Result[T] {
	if !s.cfg.Configured() {
		s.deps.Logger.Debug("Content store not configured", map[string]interface{}{
			"kind":    kind,
			"missing": s.cfg.Missing(),
		})
		return domain.Unconfigured[T]()
	}

	cacheKey := "content:" + kind
	source := apiName + ":" + kind

	if mode == cacheReadWrite {
		if items, ok := getCached[T](ctx, s.deps.Cache, cacheKey); ok {
			return domain.OK(items, source)
		}
	}

	start := time.Now()
	resp, err := s.fetchEntries(ctx, contentType, order)
	if err != nil {
		s.deps.Metrics.ObserveFetch(source, string(domain.StatusFailed), time.Since(start))
		s.deps.Logger.Error("Content fetch failed", map[string]interface{}{
			"kind":         kind,
			"content_type": contentType,
			"error":        err.Error(),
		})
		return domain.Failed[T](err)
	}

	result := domain.OK(mapFn(resp, s.deps.Logger), source)
	s.deps.Metrics.ObserveFetch(source, string(result.Status), time.Since(start))
	s.deps.Logger.Info("Content fetched", map[string]interface{}{
		"kind":  kind,
		"count": len(result.Items),
	})

	if mode != cacheBypass && result.Status == domain.StatusOK {
		setCached(ctx, s.deps.Cache, cacheKey, result.Items, s.cfg.CacheTTL)
	}

	return result
}

// fetchEntries calls GET /spaces/{space}/environments/{env}/entries
func (s *Service) fetchEntries(ctx context.Context, contentType, order string) (*entriesResponse, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.entriesURL(contentType, order), map[string]string{
		"Authorization": "Bearer " + s.cfg.AccessToken,
		"Accept":        "application/json",
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "content store request failed")
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read content store response")
	}

	var parsed entriesResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		msg := http.StatusText(resp.StatusCode())
		if decodeErr == nil && parsed.Message != "" {
			msg = parsed.Message
		}
		return nil, &coreerrors.ExternalAPIError{StatusCode: resp.StatusCode(), Message: msg, API: apiName}
	}
	if decodeErr != nil {
		return nil, coreerrors.WrapError(decodeErr, "malformed content store response")
	}
	if parsed.Sys.Type == "Error" {
		return nil, &coreerrors.ExternalAPIError{StatusCode: resp.StatusCode(), Message: parsed.Message, API: apiName}
	}

	return &parsed, nil
}

func (s *Service) entriesURL(contentType, order string) string {
	q := url.Values{}
	q.Set("content_type", contentType)
	q.Set("order", order)
	q.Set("include", "2")
	q.Set("limit", strconv.Itoa(s.cfg.Limit))

	return fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		s.cfg.BaseURL,
		url.PathEscape(s.cfg.SpaceID),
		url.PathEscape(s.cfg.Environment),
		q.Encode(),
	)
}

func mapArticles(resp *entriesResponse, logger interfaces.Logger) []domain.Article {
	idx := newAssetIndex(resp.Includes.Asset)
	articles := make([]domain.Article, 0, len(resp.Items))
	for _, e := range resp.Items {
		a, ok := idx.toArticle(e)
		if !ok {
			logger.Warn("Skipping article without title", map[string]interface{}{"entry_id": e.Sys.ID})
			continue
		}
		articles = append(articles, a)
	}
	return articles
}

func mapProjects(resp *entriesResponse, logger interfaces.Logger) []domain.Project {
	idx := newAssetIndex(resp.Includes.Asset)
	projects := make([]domain.Project, 0, len(resp.Items))
	for _, e := range resp.Items {
		p, ok := idx.toProject(e)
		if !ok {
			logger.Warn("Skipping project without title", map[string]interface{}{"entry_id": e.Sys.ID})
			continue
		}
		projects = append(projects, p)
	}
	return projects
}

func getCached[T any](ctx context.Context, cache interfaces.Cache, key string) ([]T, bool) {
	if cache == nil {
		return nil, false
	}
	data, err := cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil || len(items) == 0 {
		return nil, false
	}
	return items, true
}

func setCached[T any](ctx context.Context, cache interfaces.Cache, key string, items []T, ttl time.Duration) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = cache.Set(ctx, key, data, ttl)
}

// worstStatus orders failed > unconfigured > empty > ok
func worstStatus(statuses ...domain.FetchStatus) domain.FetchStatus {
	rank := map[domain.FetchStatus]int{
		domain.StatusOK:           0,
		domain.StatusEmpty:        1,
		domain.StatusUnconfigured: 2,
		domain.StatusFailed:       3,
	}
	worst := domain.StatusOK
	for _, st := range statuses {
		if rank[st] > rank[worst] {
			worst = st
		}
	}
	return worst
}
