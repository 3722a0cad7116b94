package posting

import "context"

// Source fetches postings from one upstream job board API. Implementations
// without credentials return an empty slice rather than an error so one
// unconfigured board never blocks the search.
type Source interface {
	// Name identifies the source in normalized jobs
	Name() string

	// Fetch retrieves and normalizes postings for a query
	Fetch(ctx context.Context, query SearchQuery) ([]Job, error)
}

// Cache stores aggregated search results keyed by query.
type Cache interface {
	// Get returns the cached jobs for a query, or ok=false on a miss
	Get(ctx context.Context, query SearchQuery) (jobs []Job, ok bool, err error)

	// Set caches the jobs for a query
	Set(ctx context.Context, query SearchQuery, jobs []Job) error
}
