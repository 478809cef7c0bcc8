// ABOUTME: Result wraps adapter output with an explicit outcome
// ABOUTME: Separates "nothing published" from "upstream failed" and "not configured"

package domain

// FetchStatus describes how an adapter call ended
type FetchStatus string

const (
	// StatusOK means at least one record was returned
	StatusOK FetchStatus = "ok"

	// StatusEmpty means the upstream answered but had nothing to return
	StatusEmpty FetchStatus = "empty"

	// StatusFailed means every upstream attempt failed
	StatusFailed FetchStatus = "failed"

	// StatusUnconfigured means required settings were missing and no call was made
	StatusUnconfigured FetchStatus = "unconfigured"
)

// Result is the outcome of a fetch. Items is never nil.
type Result[T any] struct {
	Items  []T
	Status FetchStatus

	// Source names the upstream that produced Items, when relevant
	Source string

	// Err is set only when Status is StatusFailed
	Err error
}

// OK builds a result from items, choosing StatusOK or StatusEmpty
func OK[T any](items []T, source string) Result[T] {
	if items == nil {
		items = []T{}
	}
	status := StatusOK
	if len(items) == 0 {
		status = StatusEmpty
	}
	return Result[T]{Items: items, Status: status, Source: source}
}

// Failed builds a failed result carrying err
func Failed[T any](err error) Result[T] {
	return Result[T]{Items: []T{}, Status: StatusFailed, Err: err}
}

// Unconfigured builds a result for a call that was skipped
func Unconfigured[T any]() Result[T] {
	return Result[T]{Items: []T{}, Status: StatusUnconfigured}
}
