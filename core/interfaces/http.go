package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making outbound HTTP requests.
// This abstraction allows for easy mocking in tests and keeps credentials
// out of URLs by passing them as headers.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// headers may be nil.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)

	// Post performs an HTTP POST request with a JSON body.
	// headers may be nil.
	Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	Header(key string) string
}
