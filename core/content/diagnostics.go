package content

import (
	"context"
	"time"

	"portfolio-api/core/domain"
)

// EntrySummary is the title/slug pair reported by diagnostics
type EntrySummary struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// KindReport describes one content kind in a diagnostics run
type KindReport struct {
	Status  domain.FetchStatus `json:"status"`
	Count   int                `json:"count"`
	Error   string             `json:"error,omitempty"`
	Entries []EntrySummary     `json:"entries"`
}

// Diagnostics reports whether the content store is reachable. Credential
// values are never included, only whether they are set.
type Diagnostics struct {
	Configured  bool              `json:"configured"`
	Timestamp   time.Time         `json:"timestamp"`
	Environment map[string]string `json:"environment"`
	Articles    KindReport        `json:"articles"`
	Projects    KindReport        `json:"projects"`
}

// Diagnose fetches both kinds bypassing the cache
func (s *Service) Diagnose(ctx context.Context) Diagnostics {
	d := Diagnostics{
		Configured: s.cfg.Configured(),
		Timestamp:  time.Now().UTC(),
		Environment: map[string]string{
			"spaceId":     setOrNot(s.cfg.SpaceID),
			"accessToken": setOrNot(s.cfg.AccessToken),
			"environment": s.cfg.Environment,
		},
	}

	articles := fetchKind(ctx, s, kindArticles, s.cfg.ArticleType, articleOrder, cacheBypass, mapArticles)
	d.Articles = report(articles, func(a domain.Article) EntrySummary {
		return EntrySummary{Title: a.Title, Slug: a.Slug}
	})

	projects := fetchKind(ctx, s, kindProjects, s.cfg.ProjectType, projectOrder, cacheBypass, mapProjects)
	d.Projects = report(projects, func(p domain.Project) EntrySummary {
		return EntrySummary{Title: p.Title, Slug: p.Slug}
	})

	return d
}

// Healthy is true when the store is configured and neither kind failed
func (d Diagnostics) Healthy() bool {
	return d.Configured &&
		d.Articles.Status != domain.StatusFailed &&
		d.Projects.Status != domain.StatusFailed
}

func report[T any](r domain.Result[T], summarize func(T) EntrySummary) KindReport {
	kr := KindReport{
		Status:  r.Status,
		Count:   len(r.Items),
		Entries: make([]EntrySummary, 0, len(r.Items)),
	}
	if r.Err != nil {
		kr.Error = r.Err.Error()
	}
	for _, item := range r.Items {
		kr.Entries = append(kr.Entries, summarize(item))
	}
	return kr
}

func setOrNot(v string) string {
	if v == "" {
		return "NOT SET"
	}
	return "SET"
}
