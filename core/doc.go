// Package core contains the business logic for the Portfolio API.
// It is framework-agnostic and can be used without the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Article, Project, FeedPost, Result)
// - content: Articles and projects from the headless content store
// - feed: Blog posts from the public feed proxies, tried in order
// - chat: Visitor messages forwarded to a language model
// - workers: Background cache refresher
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - List operations report failures in their Result instead of returning errors
//
// # Usage Example
//
//	import (
//	    "portfolio-api/core/content"
//	    "portfolio-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache, may be nil
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := content.NewService(content.Config{
//	    SpaceID:     "space",
//	    AccessToken: "token",
//	}, deps)
//
//	result := svc.Articles(ctx)
//	if result.Status == domain.StatusFailed {
//	    // render the fallback UI
//	}
package core
