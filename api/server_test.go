package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/api/handlers"
	"portfolio-api/core/interfaces"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	require.NotNil(t, api)
	require.NotNil(t, router)
}

func TestNewAPI_HasCorrectInfo(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	assert.Equal(t, "Portfolio API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", w.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/docs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{EnableMetrics: true})
	handlers.NewStatusHandler(nil).RegisterRoutes(api)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `path="/health"`))
}

func TestAPI_MetricsDisabled(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_RateLimit(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{
		Logger:     interfaces.NopLogger{},
		RateLimit:  1,
		RateWindow: time.Minute,
	})
	handlers.NewStatusHandler(nil).RegisterRoutes(api)

	serve := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		router.ServeHTTP(w, req)
		return w
	}

	first := serve()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusTooManyRequests, serve().Code)
}

func TestAPI_RateLimitTrustProxy(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		wantSecond int
	}{
		{"direct clients share the peer's bucket", false, http.StatusTooManyRequests},
		{"proxied clients get their own bucket", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, router := NewAPIWithMiddleware(APIConfig{
				RateLimit:  1,
				RateWindow: time.Minute,
				TrustProxy: tt.trustProxy,
			})
			handlers.NewStatusHandler(nil).RegisterRoutes(api)

			serve := func(client string) int {
				w := httptest.NewRecorder()
				req := httptest.NewRequest("GET", "/health", nil)
				req.RemoteAddr = "10.0.0.2:5555"
				req.Header.Set("X-Forwarded-For", client)
				router.ServeHTTP(w, req)
				return w.Code
			}

			assert.Equal(t, http.StatusOK, serve("203.0.113.1"))
			assert.Equal(t, tt.wantSecond, serve("203.0.113.2"))
		})
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{AllowedOrigins: []string{"https://example.dev"}})
	handlers.NewStatusHandler(nil).RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "https://example.dev")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://example.dev", w.Header().Get("Access-Control-Allow-Origin"))
}
