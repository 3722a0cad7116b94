package rank

import (
	"testing"
	"time"

	"github.com/jobmatchai/backend/jobsearch/posting"
)

func fptr(v float64) *float64 { return &v }

func titles(jobs []posting.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func TestFilterAndRankEmptyCriteria(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", MatchScore: fptr(70)},
		{Title: "B", MatchScore: fptr(90)},
		{Title: "C"},
	}

	got := FilterAndRank(jobs, Criteria{})
	if len(got) != 3 {
		t.Fatalf("jobs = %d, want all 3 with empty criteria", len(got))
	}
	// Default ordering is by match score, missing scores count as zero.
	if got[0].Title != "B" || got[1].Title != "A" || got[2].Title != "C" {
		t.Errorf("order = %v", titles(got))
	}
}

func TestFilterAndRankDoesNotMutateInput(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", MatchScore: fptr(10)},
		{Title: "B", MatchScore: fptr(90)},
	}

	_ = FilterAndRank(jobs, Criteria{})
	if jobs[0].Title != "A" {
		t.Error("input slice was reordered")
	}
}

func TestJobTypeFilter(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", ContractType: "Full-Time"},
		{Title: "B", ContractType: "part-time"},
		{Title: "C", ContractType: ""},
		{Title: "D", ContractType: "Not specified"},
	}

	got := FilterAndRank(jobs, Criteria{JobTypes: []string{"full-time"}})
	want := map[string]bool{"A": true, "C": true, "D": true}
	if len(got) != 3 {
		t.Fatalf("jobs = %v, want A, C and D", titles(got))
	}
	for _, j := range got {
		if !want[j.Title] {
			t.Errorf("unexpected job %q kept", j.Title)
		}
	}
}

func TestWorkModeFilter(t *testing.T) {
	jobs := []posting.Job{
		{Title: "Remote Engineer", Description: "fully remote role"},
		{Title: "B", Description: "on-site in the office"},
		{Title: "C", Description: "no mode mentioned"},
	}

	got := FilterAndRank(jobs, Criteria{WorkModes: []string{"remote"}})
	if len(got) != 2 {
		t.Fatalf("jobs = %v, want the remote job and the unspecified one", titles(got))
	}
	for _, j := range got {
		if j.Title == "B" {
			t.Error("on-site job kept when filtering for remote")
		}
	}
}

func TestSalaryFilterKeepsMissing(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", SalaryMin: fptr(30000), SalaryMax: fptr(40000)},
		{Title: "B", SalaryMin: fptr(80000), SalaryMax: fptr(90000)},
		{Title: "C"}, // no salary info
	}

	got := FilterAndRank(jobs, Criteria{SalaryMin: fptr(50000)})
	if len(got) != 2 {
		t.Fatalf("jobs = %v, want B and C", titles(got))
	}
	for _, j := range got {
		if j.Title == "A" {
			t.Error("underpaying job kept")
		}
	}
}

func TestSalaryFilterUpperBound(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", SalaryMin: fptr(80000)},
		{Title: "B", SalaryMin: fptr(30000)},
	}

	got := FilterAndRank(jobs, Criteria{SalaryMax: fptr(50000)})
	if len(got) != 1 || got[0].Title != "B" {
		t.Errorf("jobs = %v, want only B", titles(got))
	}
}

func TestMatchScoreFilterDropsMissing(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", MatchScore: fptr(85)},
		{Title: "B", MatchScore: fptr(40)},
		{Title: "C"}, // unscored counts as zero
	}

	got := FilterAndRank(jobs, Criteria{MinMatchScore: 60})
	if len(got) != 1 || got[0].Title != "A" {
		t.Errorf("jobs = %v, want only A", titles(got))
	}
}

func TestDistanceFilterKeepsMissing(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", DistanceMiles: fptr(5)},
		{Title: "B", DistanceMiles: fptr(40)},
		{Title: "C"},
	}

	got := FilterAndRank(jobs, Criteria{MaxDistanceMiles: 10})
	if len(got) != 2 {
		t.Fatalf("jobs = %v, want A and C", titles(got))
	}
	for _, j := range got {
		if j.Title == "B" {
			t.Error("distant job kept")
		}
	}
}

func TestDateFilter(t *testing.T) {
	now := time.Now()
	jobs := []posting.Job{
		{Title: "Fresh", CreatedAt: now.Add(-2 * 24 * time.Hour).Format(time.RFC3339)},
		{Title: "Stale", CreatedAt: now.Add(-30 * 24 * time.Hour).Format(time.RFC3339)},
		{Title: "NoDate"},
		{Title: "Garbage", CreatedAt: "sometime last week"},
	}

	got := FilterAndRank(jobs, Criteria{DatePosted: "7days"})
	if len(got) != 3 {
		t.Fatalf("jobs = %v, want Fresh, NoDate and Garbage", titles(got))
	}
	for _, j := range got {
		if j.Title == "Stale" {
			t.Error("stale job kept")
		}
	}
}

func TestParseDateKeepsTimeOfDay(t *testing.T) {
	got, ok := parseDate("2024-12-15T10:30:00")
	if !ok {
		t.Fatal("naive ISO datetime not parsed")
	}
	want := time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate = %v, want %v", got, want)
	}
}

func TestDateFilterKeepsSameDayLaterTime(t *testing.T) {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	jobs := []posting.Job{
		{Title: "Inside", CreatedAt: cutoff.Add(time.Hour).Format("2006-01-02T15:04:05")},
		{Title: "Outside", CreatedAt: cutoff.Add(-time.Hour).Format("2006-01-02T15:04:05")},
	}

	got, _ := (&dateFilter{cutoff: cutoff}).Apply(jobs)
	if want := []string{"Inside"}; len(got) != 1 || got[0].Title != "Inside" {
		t.Errorf("jobs = %v, want %v", titles(got), want)
	}
}

func TestDateFilterUnknownWindowKeepsAll(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", CreatedAt: "2020-01-01"},
	}

	got := FilterAndRank(jobs, Criteria{DatePosted: "90days"})
	if len(got) != 1 {
		t.Error("unknown date window must not filter")
	}
}

func TestSortByDate(t *testing.T) {
	jobs := []posting.Job{
		{Title: "Old", CreatedAt: "2024-01-02"},
		{Title: "New", CreatedAt: "2024-12-15"},
		{Title: "Mid", CreatedAt: "2024-06-30"},
	}

	got := FilterAndRank(jobs, Criteria{SortBy: SortByDate})
	if got[0].Title != "New" || got[1].Title != "Mid" || got[2].Title != "Old" {
		t.Errorf("order = %v", titles(got))
	}
}

func TestSortBySalaryNilLast(t *testing.T) {
	jobs := []posting.Job{
		{Title: "NoSalary"},
		{Title: "High", SalaryMax: fptr(90000)},
		{Title: "Low", SalaryMax: fptr(30000)},
	}

	got := FilterAndRank(jobs, Criteria{SortBy: SortBySalary})
	if got[0].Title != "High" || got[1].Title != "Low" || got[2].Title != "NoSalary" {
		t.Errorf("order = %v", titles(got))
	}
}

func TestSortUnknownFallsBackToMatchScore(t *testing.T) {
	jobs := []posting.Job{
		{Title: "A", MatchScore: fptr(40)},
		{Title: "B", MatchScore: fptr(90)},
	}

	got := FilterAndRank(jobs, Criteria{SortBy: "relevance"})
	if got[0].Title != "B" {
		t.Errorf("order = %v, want match-score ordering", titles(got))
	}
}

func TestSortStableOnEqualScores(t *testing.T) {
	jobs := []posting.Job{
		{Title: "First", MatchScore: fptr(80)},
		{Title: "Second", MatchScore: fptr(80)},
		{Title: "Third", MatchScore: fptr(80)},
	}

	got := FilterAndRank(jobs, Criteria{})
	if got[0].Title != "First" || got[1].Title != "Second" || got[2].Title != "Third" {
		t.Errorf("equal scores must keep input order, got %v", titles(got))
	}
}

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2024-12-15", true},
		{"2024-12-15T10:30:00Z", true},
		{"2024-12-15T10:30:00.000Z", true},
		{"15/06/2024", true},
		{"2024-12-15T10:30:00", true},
		{"", false},
		{"last tuesday", false},
	}

	for _, tt := range tests {
		if _, ok := parseDate(tt.value); ok != tt.ok {
			t.Errorf("parseDate(%q) ok = %v, want %v", tt.value, ok, tt.ok)
		}
	}
}
