package standard

import (
	"net/http"
	"time"

	"portfolio-api/core/interfaces"
)

// LoggingRoundTripper logs method, host, path, status and latency of each
// outbound request. Query strings and headers are never logged since they
// can carry access tokens.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip implements http.RoundTripper
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.Transport.RoundTrip(req)
	fields := map[string]interface{}{
		"method":      req.Method,
		"host":        req.URL.Host,
		"path":        req.URL.Path,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		t.Logger.Error("Outbound request failed", fields)
		return nil, err
	}
	fields["status"] = resp.StatusCode
	t.Logger.Debug("Outbound request", fields)
	return resp, nil
}
