package domain

import "fmt"

// ResolutionErrorKind classifies why a query could not be resolved to a track.
type ResolutionErrorKind int

const (
	// ResolutionUnsupportedSource means the query pointed at a playlist or
	// livestream, which cannot be queued.
	ResolutionUnsupportedSource ResolutionErrorKind = iota
	// ResolutionNoResults means the search yielded nothing.
	ResolutionNoResults
	// ResolutionLookupFailed means the lookup itself failed (network error,
	// upstream exception).
	ResolutionLookupFailed
)

// String returns a human-readable representation of the kind.
func (k ResolutionErrorKind) String() string {
	switch k {
	case ResolutionUnsupportedSource:
		return "unsupported source"
	case ResolutionNoResults:
		return "no results"
	default:
		return "lookup failed"
	}
}

// ResolutionError reports a failed track resolution. The caller is
// responsible for user-facing messaging; no local state is mutated for a
// failed request.
type ResolutionError struct {
	Kind  ResolutionErrorKind
	Query string
	Err   error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolving %q: %s: %v", e.Query, e.Kind, e.Err)
	}
	return fmt.Sprintf("resolving %q: %s", e.Query, e.Kind)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NewResolutionError creates a ResolutionError of the given kind.
func NewResolutionError(kind ResolutionErrorKind, query string, err error) *ResolutionError {
	return &ResolutionError{Kind: kind, Query: query, Err: err}
}
