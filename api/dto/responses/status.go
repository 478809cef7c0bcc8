// ABOUTME: Response DTOs for the content store diagnostics endpoint
// ABOUTME: Reports whether credentials are set without ever echoing them

package responses

import "time"

// EntrySummaryResponse is a title/slug pair
type EntrySummaryResponse struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// KindStatusResponse describes one content kind
type KindStatusResponse struct {
	Status  string                 `json:"status"`
	Count   int                    `json:"count"`
	Error   string                 `json:"error,omitempty"`
	Entries []EntrySummaryResponse `json:"entries"`
}

// ContentStatusResponse is the body of GET /status/content
type ContentStatusResponse struct {
	Healthy     bool               `json:"healthy"`
	Configured  bool               `json:"configured"`
	Timestamp   time.Time          `json:"timestamp"`
	Environment map[string]string  `json:"environment" doc:"SET or NOT SET per credential"`
	Articles    KindStatusResponse `json:"articles"`
	Projects    KindStatusResponse `json:"projects"`
}
