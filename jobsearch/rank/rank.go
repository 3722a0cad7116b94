// Package rank filters and orders job postings by user criteria.
package rank

import (
	"sort"
	"time"

	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/jobmatchai/backend/pkg/logx"
)

// Sort criteria.
const (
	SortByMatchScore = "match_score"
	SortByDate       = "date"
	SortBySalary     = "salary"
)

// DatePosted windows accepted by the date filter.
var dateWindows = map[string]time.Duration{
	"24h":    24 * time.Hour,
	"3days":  3 * 24 * time.Hour,
	"7days":  7 * 24 * time.Hour,
	"14days": 14 * 24 * time.Hour,
	"30days": 30 * 24 * time.Hour,
}

// Criteria holds the user's filter and sort preferences. Zero values mean
// "do not filter on this".
type Criteria struct {
	JobTypes         []string `json:"job_types,omitempty"`
	WorkModes        []string `json:"work_modes,omitempty"`
	DatePosted       string   `json:"date_posted,omitempty"`
	SalaryMin        *float64 `json:"salary_min,omitempty"`
	SalaryMax        *float64 `json:"salary_max,omitempty"`
	MinMatchScore    float64  `json:"min_match_score,omitempty"`
	MaxDistanceMiles float64  `json:"max_distance_miles,omitempty"`
	SortBy           string   `json:"sort_by,omitempty"`
}

// FilterAndRank applies every active filter in order, then sorts. The
// input slice is not modified.
func FilterAndRank(jobs []posting.Job, criteria Criteria) []posting.Job {
	result := make([]posting.Job, len(jobs))
	copy(result, jobs)

	for _, f := range buildPipeline(criteria) {
		var step Step
		result, step = f.Apply(result)
		if step.Dropped > 0 {
			logx.Infof("Filter %s dropped %d of %d jobs, %d left",
				f.Name(), step.Dropped, step.Initial, step.Left)
		}
	}

	sortJobs(result, criteria.SortBy)
	return result
}

func buildPipeline(criteria Criteria) []Filter {
	var pipeline []Filter
	if len(criteria.JobTypes) > 0 {
		pipeline = append(pipeline, &jobTypeFilter{types: criteria.JobTypes})
	}
	if len(criteria.WorkModes) > 0 {
		pipeline = append(pipeline, &workModeFilter{modes: criteria.WorkModes})
	}
	if criteria.DatePosted != "" && criteria.DatePosted != "any" {
		if window, ok := dateWindows[criteria.DatePosted]; ok {
			pipeline = append(pipeline, &dateFilter{cutoff: time.Now().Add(-window)})
		}
	}
	if criteria.SalaryMin != nil || criteria.SalaryMax != nil {
		pipeline = append(pipeline, &salaryFilter{min: criteria.SalaryMin, max: criteria.SalaryMax})
	}
	if criteria.MinMatchScore > 0 {
		pipeline = append(pipeline, &matchScoreFilter{min: criteria.MinMatchScore})
	}
	if criteria.MaxDistanceMiles > 0 {
		pipeline = append(pipeline, &distanceFilter{max: criteria.MaxDistanceMiles})
	}
	return pipeline
}

// sortJobs orders jobs by the requested criterion, descending. Unknown
// criteria fall back to match score. Sorting is stable so equal keys keep
// their input order.
func sortJobs(jobs []posting.Job, sortBy string) {
	switch sortBy {
	case SortByDate:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].CreatedAt > jobs[j].CreatedAt
		})
	case SortBySalary:
		sort.SliceStable(jobs, func(i, j int) bool {
			return salaryOrZero(&jobs[i]) > salaryOrZero(&jobs[j])
		})
	default:
		sort.SliceStable(jobs, func(i, j int) bool {
			return scoreOrZero(&jobs[i]) > scoreOrZero(&jobs[j])
		})
	}
}

func scoreOrZero(job *posting.Job) float64 {
	if job.MatchScore == nil {
		return 0
	}
	return *job.MatchScore
}

func salaryOrZero(job *posting.Job) float64 {
	if job.SalaryMax == nil {
		return 0
	}
	return *job.SalaryMax
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

var dateOnlyLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

// parseDate handles the creation timestamps the boards actually send:
// datetime layouts against the full string first (preserving time of day),
// then the date-only layouts against the first ten characters.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	prefix := value
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	for _, layout := range dateOnlyLayouts {
		if t, err := time.Parse(layout, prefix); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
