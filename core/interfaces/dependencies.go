// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides caching functionality; nil disables caching
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records upstream call outcomes; nil disables recording
	Metrics Metrics
}

// WithDefaults returns a copy where a nil Logger or Metrics is replaced by a no-op
func (d Dependencies) WithDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = NopLogger{}
	}
	if d.Metrics == nil {
		d.Metrics = NopMetrics{}
	}
	return d
}
