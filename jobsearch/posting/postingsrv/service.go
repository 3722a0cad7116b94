package postingsrv

import (
	"context"
	"sync"

	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/jobmatchai/backend/pkg/logx"
)

type Service struct {
	sources []posting.Source
	cache   posting.Cache
}

// NewService creates a new posting aggregation service. cache may be nil,
// in which case every search goes to the upstream boards.
func NewService(sources []posting.Source, cache posting.Cache) *Service {
	return &Service{
		sources: sources,
		cache:   cache,
	}
}

// Search fetches postings from every configured board concurrently,
// normalizes them, and deduplicates across boards. Board order is
// preserved in the combined result so deduplication keeps the first
// board's copy.
func (s *Service) Search(ctx context.Context, query posting.SearchQuery) ([]posting.Job, error) {
	if query.JobTitle == "" || query.Location == "" {
		return nil, posting.ErrInvalidQuery()
	}
	query = query.Normalize()

	if s.cache != nil {
		if jobs, ok, err := s.cache.Get(ctx, query); err != nil {
			logx.Warnf("Search cache read failed: %v", err)
		} else if ok {
			logx.Infof("Search cache hit for %q in %q: %d jobs", query.JobTitle, query.Location, len(jobs))
			return jobs, nil
		}
	}

	results := make([][]posting.Job, len(s.sources))
	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(i int, src posting.Source) {
			defer wg.Done()
			jobs, err := src.Fetch(ctx, query)
			if err != nil {
				// One failing board must not sink the whole search.
				logx.Errorf("Fetch from %s failed: %v", src.Name(), err)
				return
			}
			logx.Infof("Fetched %d jobs from %s", len(jobs), src.Name())
			results[i] = jobs
		}(i, src)
	}
	wg.Wait()

	var combined []posting.Job
	for _, jobs := range results {
		combined = append(combined, jobs...)
	}
	logx.Infof("Total jobs fetched: %d", len(combined))

	unique := posting.Deduplicate(combined)
	logx.Infof("Unique jobs after deduplication: %d", len(unique))

	if s.cache != nil && len(unique) > 0 {
		if err := s.cache.Set(ctx, query, unique); err != nil {
			logx.Warnf("Search cache write failed: %v", err)
		}
	}

	return unique, nil
}
