// Package views models the list/form/confirmation workflow that every
// entity screen on the dashboard shares: explicit state structs
// transitioned by discrete events, with the store kept behind fetch and
// submit callbacks.
//
// The API handlers do not import this package. It is the reference
// behavior for the browser client that consumes the JSON API, kept and
// tested here so the screen lifecycles stay specified next to the
// backend they talk to.
package views

import "strings"

// LoadState is the lifecycle of a list view's collection fetch.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Fetcher loads the full collection for a list view.
type Fetcher[T any] func() ([]T, error)

// ListView is the state machine behind an entity list screen. It owns the
// fetched rows, a derived case-insensitive search filter, and the re-fetch
// discipline: every successful mutation triggers a full reload rather than
// incremental patching.
type ListView[T any] struct {
	fetch        Fetcher[T]
	searchFields func(T) []string

	state  LoadState
	rows   []T
	err    error
	search string

	// generation guards against a superseded load landing late; its
	// result is discarded instead of clobbering newer state.
	generation int
}

// NewListView builds an idle list view. searchFields extracts the display
// fields matched by the search filter; nil disables filtering.
func NewListView[T any](fetch Fetcher[T], searchFields func(T) []string) *ListView[T] {
	return &ListView[T]{fetch: fetch, searchFields: searchFields, state: StateIdle}
}

// State returns the current lifecycle state.
func (v *ListView[T]) State() LoadState { return v.state }

// Err returns the failure from the most recent load, if any.
func (v *ListView[T]) Err() error { return v.err }

// Load fetches the collection and transitions Loading → Loaded or Failed.
// A load error never panics the view; it lands in the Failed state with
// an empty row set for the error-state render.
func (v *ListView[T]) Load() {
	v.generation++
	gen := v.generation
	v.state = StateLoading

	rows, err := v.fetch()
	v.complete(gen, rows, err)
}

// BeginLoad starts an asynchronous load and returns its generation token.
// The caller completes it with CompleteLoad once the fetch resolves.
func (v *ListView[T]) BeginLoad() int {
	v.generation++
	v.state = StateLoading
	return v.generation
}

// CompleteLoad applies an asynchronous load result. Results from a
// superseded generation are discarded.
func (v *ListView[T]) CompleteLoad(generation int, rows []T, err error) {
	v.complete(generation, rows, err)
}

func (v *ListView[T]) complete(generation int, rows []T, err error) {
	if generation != v.generation {
		return // stale result, a newer load owns the view
	}
	if err != nil {
		v.state = StateFailed
		v.rows = nil
		v.err = err
		return
	}
	v.state = StateLoaded
	v.rows = rows
	v.err = nil
}

// SetSearch updates the derived substring filter. Matching is
// case-insensitive across the configured display fields.
func (v *ListView[T]) SetSearch(term string) {
	v.search = term
}

// Rows returns the visible rows after applying the search filter.
func (v *ListView[T]) Rows() []T {
	if v.search == "" || v.searchFields == nil {
		return v.rows
	}
	needle := strings.ToLower(v.search)
	var filtered []T
	for _, row := range v.rows {
		for _, field := range v.searchFields(row) {
			if strings.Contains(strings.ToLower(field), needle) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	return filtered
}

// MutationDone signals that a row-level mutation (delete, status toggle)
// succeeded. The view re-fetches the full collection: consistency over
// latency.
func (v *ListView[T]) MutationDone() {
	v.Load()
}
