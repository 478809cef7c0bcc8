// ABOUTME: Feed service retrieves a user's public blog feed through converter endpoints
// ABOUTME: Candidates are tried strictly in order, each under its own timeout

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio-api/core/domain"
	coreerrors "portfolio-api/core/errors"
	"portfolio-api/core/interfaces"
)

// maxResponseBytes bounds the body read from a converter
const maxResponseBytes = 5 << 20

// errNoPosts marks a candidate that answered but produced no usable posts
var errNoPosts = errors.New("no posts")

// Service is the blog feed adapter
type Service struct {
	cfg  Config
	deps interfaces.Dependencies
}

// NewService creates a feed service. Zero-valued config fields take the
// DefaultConfig values.
func NewService(cfg Config, deps interfaces.Dependencies) *Service {
	return &Service{
		cfg:  cfg.withDefaults(),
		deps: deps.WithDefaults(),
	}
}

// FetchPosts returns the user's posts or an empty slice on any failure
func (s *Service) FetchPosts(ctx context.Context, username string) []domain.FeedPost {
	return s.Posts(ctx, username).Items
}

// Posts returns the user's posts with an explicit outcome. An empty handle
// returns Unconfigured immediately without any network call.
func (s *Service) Posts(ctx context.Context, username string) domain.Result[domain.FeedPost] {
	return s.posts(ctx, username, true)
}

// Username returns the configured handle, normalized
func (s *Service) Username() string {
	return NormalizeUsername(s.cfg.Username)
}

// Refresh re-fetches the configured user's posts and overwrites the cached
// copy. A failed refresh leaves the previous entry in place.
func (s *Service) Refresh(ctx context.Context) domain.FetchStatus {
	return s.posts(ctx, s.cfg.Username, false).Status
}

func (s *Service) posts(ctx context.Context, username string, readCache bool) domain.Result[domain.FeedPost] {
	username = NormalizeUsername(username)
	if username == "" {
		s.deps.Logger.Debug("No feed username provided", nil)
		return domain.Unconfigured[domain.FeedPost]()
	}

	// Only the configured handle is cached so arbitrary query values
	// cannot grow the cache.
	cacheKey := ""
	if s.isConfiguredUser(username) {
		cacheKey = "feed:" + strings.ToLower(username)
	}
	if readCache && cacheKey != "" {
		if cached, ok := s.getCached(ctx, cacheKey); ok {
			return cached
		}
	}

	feedURL := fmt.Sprintf(s.cfg.FeedURLTemplate, url.PathEscape(username))

	var lastErr error
	answered := false

	for _, candidate := range s.cfg.Candidates {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		posts, err := s.tryCandidate(ctx, candidate, feedURL)
		if err == nil {
			if s.cfg.MaxItems > 0 && len(posts) > s.cfg.MaxItems {
				posts = posts[:s.cfg.MaxItems]
			}
			result := domain.OK(posts, candidate.Name)
			s.deps.Logger.Info("Feed fetched", map[string]interface{}{
				"username":  username,
				"candidate": candidate.Name,
				"count":     len(posts),
			})
			if cacheKey != "" {
				s.setCached(ctx, cacheKey, result)
			}
			return result
		}

		if errors.Is(err, errNoPosts) {
			answered = true
		} else {
			lastErr = err
		}
		s.deps.Logger.Warn("Feed candidate failed", map[string]interface{}{
			"username":  username,
			"candidate": candidate.Name,
			"error":     err.Error(),
		})
	}

	if answered && ctx.Err() == nil {
		return domain.OK[domain.FeedPost](nil, "")
	}
	if lastErr == nil {
		lastErr = errors.New("no feed candidates configured")
	}

	s.deps.Logger.Error("All feed candidates failed", map[string]interface{}{
		"username": username,
		"error":    lastErr.Error(),
	})
	return domain.Failed[domain.FeedPost](lastErr)
}

// tryCandidate performs one attempt under CandidateTimeout
func (s *Service) tryCandidate(ctx context.Context, c Candidate, feedURL string) (posts []domain.FeedPost, err error) {
	source := "feed:" + c.Name
	start := time.Now()
	defer func() {
		status := domain.StatusOK
		switch {
		case errors.Is(err, errNoPosts):
			status = domain.StatusEmpty
		case err != nil:
			status = domain.StatusFailed
		}
		s.deps.Metrics.ObserveFetch(source, string(status), time.Since(start))
	}()

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.CandidateTimeout)
	defer cancel()

	endpoint := fmt.Sprintf(c.URLTemplate, url.QueryEscape(feedURL))
	resp, err := s.deps.HTTPClient.Get(attemptCtx, endpoint, map[string]string{
		"Accept": "application/json",
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, c.Name)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        c.Name,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return nil, coreerrors.WrapError(err, c.Name)
	}

	raw, err := decode(c.Kind, body)
	if err != nil {
		var payloadErr *errorPayload
		if errors.As(err, &payloadErr) {
			return nil, &coreerrors.ExternalAPIError{
				StatusCode: resp.StatusCode(),
				Message:    payloadErr.Message,
				API:        c.Name,
			}
		}
		return nil, coreerrors.WrapError(err, c.Name)
	}

	posts = normalizeAll(raw, s.cfg.DescriptionLimit)
	if len(posts) == 0 {
		return nil, fmt.Errorf("%s: %w", c.Name, errNoPosts)
	}
	return posts, nil
}

// isConfiguredUser reports whether username is the configured handle.
// Handles are case-insensitive.
func (s *Service) isConfiguredUser(username string) bool {
	configured := s.Username()
	return configured != "" && strings.EqualFold(username, configured)
}

// NormalizeUsername trims whitespace and a leading "@"
func NormalizeUsername(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}

type cachedResult struct {
	Source string            `json:"source"`
	Posts  []domain.FeedPost `json:"posts"`
}

func (s *Service) getCached(ctx context.Context, key string) (domain.Result[domain.FeedPost], bool) {
	if s.deps.Cache == nil {
		return domain.Result[domain.FeedPost]{}, false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return domain.Result[domain.FeedPost]{}, false
	}
	var cached cachedResult
	if err := json.Unmarshal(data, &cached); err != nil || len(cached.Posts) == 0 {
		return domain.Result[domain.FeedPost]{}, false
	}
	return domain.OK(cached.Posts, cached.Source), true
}

func (s *Service) setCached(ctx context.Context, key string, result domain.Result[domain.FeedPost]) {
	if s.deps.Cache == nil || result.Status != domain.StatusOK {
		return
	}
	data, err := json.Marshal(cachedResult{Source: result.Source, Posts: result.Items})
	if err != nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, key, data, s.cfg.CacheTTL)
}
