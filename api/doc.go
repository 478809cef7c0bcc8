// Package api provides the HTTP API layer for the portfolio service.
// It uses the Huma framework on a chi router to provide automatic OpenAPI
// documentation, request validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration, CORS and middleware ordering
// - handlers/: HTTP request handlers for content, posts, chat and status
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging, per-IP rate limiting, request metrics
//
// # Routes
//
//	GET  /articles, /articles/{slug}
//	GET  /projects, /projects/{slug}
//	GET  /posts?username=
//	POST /chat
//	GET  /status/content
//	GET  /health
//	GET  /metrics (when enabled)
//
// List routes always answer 200. Upstream trouble is reported through the
// status field of the body so the site can render its empty states.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:        logger,
//	    RateLimit:     100,
//	    RateWindow:    time.Minute,
//	    EnableMetrics: true,
//	})
//
//	handlers.NewContentHandler(contentService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format produced by Huma:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "article not found: hello-world"
//	}
//
// Domain errors are mapped to status codes in handlers/errors.go.
package api
