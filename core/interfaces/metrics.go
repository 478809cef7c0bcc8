package interfaces

import "time"

// Metrics records upstream fetch outcomes
type Metrics interface {
	// ObserveFetch records one upstream call. status is a domain.FetchStatus value.
	ObserveFetch(source, status string, duration time.Duration)
}

// NopMetrics discards all observations
type NopMetrics struct{}

func (NopMetrics) ObserveFetch(string, string, time.Duration) {}
