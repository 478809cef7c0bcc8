package mappers

import (
	"portfolio-api/api/dto/responses"
	"portfolio-api/core/content"
)

// ToContentStatusResponse converts a diagnostics run
func ToContentStatusResponse(d content.Diagnostics) responses.ContentStatusResponse {
	env := make(map[string]string, len(d.Environment))
	for k, v := range d.Environment {
		env[k] = v
	}
	return responses.ContentStatusResponse{
		Healthy:     d.Healthy(),
		Configured:  d.Configured,
		Timestamp:   d.Timestamp,
		Environment: env,
		Articles:    toKindStatus(d.Articles),
		Projects:    toKindStatus(d.Projects),
	}
}

func toKindStatus(r content.KindReport) responses.KindStatusResponse {
	entries := make([]responses.EntrySummaryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, responses.EntrySummaryResponse{Title: e.Title, Slug: e.Slug})
	}
	return responses.KindStatusResponse{
		Status:  string(r.Status),
		Count:   r.Count,
		Error:   r.Error,
		Entries: entries,
	}
}
