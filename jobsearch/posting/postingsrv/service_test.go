package postingsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/jobmatchai/backend/jobsearch/posting"
)

type fakeSource struct {
	name string
	jobs []posting.Job
	err  error
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(_ context.Context, _ posting.SearchQuery) ([]posting.Job, error) {
	return f.jobs, f.err
}

type fakeCache struct {
	stored map[string][]posting.Job
	hit    []posting.Job
	getErr error
}

func (f *fakeCache) Get(_ context.Context, _ posting.SearchQuery) ([]posting.Job, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	if f.hit != nil {
		return f.hit, true, nil
	}
	return nil, false, nil
}

func (f *fakeCache) Set(_ context.Context, q posting.SearchQuery, jobs []posting.Job) error {
	if f.stored == nil {
		f.stored = map[string][]posting.Job{}
	}
	f.stored[q.JobTitle] = jobs
	return nil
}

var testQuery = posting.SearchQuery{JobTitle: "Engineer", Location: "London"}

func TestSearchCombinesSources(t *testing.T) {
	svc := NewService([]posting.Source{
		&fakeSource{name: "A", jobs: []posting.Job{{Source: "A", Title: "Engineer", Company: "Acme"}}},
		&fakeSource{name: "B", jobs: []posting.Job{{Source: "B", Title: "Developer", Company: "Widget"}}},
	}, nil)

	jobs, err := svc.Search(context.Background(), testQuery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(jobs))
	}
	if jobs[0].Source != "A" || jobs[1].Source != "B" {
		t.Errorf("source order not preserved: %v, %v", jobs[0].Source, jobs[1].Source)
	}
}

func TestSearchDeduplicatesAcrossSources(t *testing.T) {
	svc := NewService([]posting.Source{
		&fakeSource{name: "A", jobs: []posting.Job{{Source: "A", Title: "Engineer", Company: "Acme"}}},
		&fakeSource{name: "B", jobs: []posting.Job{{Source: "B", Title: "engineer ", Company: " ACME"}}},
	}, nil)

	jobs, err := svc.Search(context.Background(), testQuery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("jobs = %d, want 1 after dedup", len(jobs))
	}
	if jobs[0].Source != "A" {
		t.Errorf("dedup kept %q, want the first source's copy", jobs[0].Source)
	}
}

func TestSearchToleratesFailingSource(t *testing.T) {
	svc := NewService([]posting.Source{
		&fakeSource{name: "A", err: errors.New("upstream down")},
		&fakeSource{name: "B", jobs: []posting.Job{{Source: "B", Title: "Developer", Company: "Widget"}}},
	}, nil)

	jobs, err := svc.Search(context.Background(), testQuery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("jobs = %d, want 1 from the healthy source", len(jobs))
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := NewService(nil, nil)

	if _, err := svc.Search(context.Background(), posting.SearchQuery{}); err == nil {
		t.Fatal("expected an error for an empty query")
	}
}

func TestSearchUsesCache(t *testing.T) {
	cached := []posting.Job{{Source: "Cache", Title: "Engineer", Company: "Acme"}}
	cache := &fakeCache{hit: cached}
	svc := NewService([]posting.Source{
		&fakeSource{name: "A", jobs: []posting.Job{{Source: "A", Title: "Other", Company: "Other"}}},
	}, cache)

	jobs, err := svc.Search(context.Background(), testQuery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Source != "Cache" {
		t.Errorf("expected the cached result, got %+v", jobs)
	}
}

func TestSearchToleratesCacheReadFailure(t *testing.T) {
	cache := &fakeCache{getErr: posting.ErrRegistry.NewWithCause(posting.CodeCacheFailed, errors.New("redis down"))}
	svc := NewService([]posting.Source{
		&fakeSource{name: "A", jobs: []posting.Job{{Source: "A", Title: "Engineer", Company: "Acme"}}},
	}, cache)

	jobs, err := svc.Search(context.Background(), testQuery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Errorf("expected upstream results despite cache failure, got %+v", jobs)
	}
}

func TestSearchWritesCacheOnMiss(t *testing.T) {
	cache := &fakeCache{}
	svc := NewService([]posting.Source{
		&fakeSource{name: "A", jobs: []posting.Job{{Source: "A", Title: "Engineer", Company: "Acme"}}},
	}, cache)

	if _, err := svc.Search(context.Background(), testQuery); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.stored["Engineer"]) != 1 {
		t.Error("search results were not cached")
	}
}

func TestDeduplicateKeepsEmptyKeys(t *testing.T) {
	jobs := []posting.Job{
		{Source: "A"},
		{Source: "B"},
		{Source: "C", Title: "Engineer", Company: "Acme"},
	}

	unique := posting.Deduplicate(jobs)
	if len(unique) != 3 {
		t.Errorf("jobs = %d, want 3: empty title+company must never deduplicate", len(unique))
	}
}
