package rank

import (
	"strings"
	"time"

	"github.com/jobmatchai/backend/jobsearch/posting"
)

// Filter is one step of the ranking pipeline.
type Filter interface {
	Name() string
	Apply(jobs []posting.Job) ([]posting.Job, Step)
}

// Step reports what one filter did.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

func keep(jobs []posting.Job, pred func(*posting.Job) bool) ([]posting.Job, Step) {
	initial := len(jobs)
	kept := jobs[:0]
	for i := range jobs {
		if pred(&jobs[i]) {
			kept = append(kept, jobs[i])
		}
	}
	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

// jobTypeFilter keeps jobs whose contract type matches any requested type.
// Jobs with no contract type stated are kept.
type jobTypeFilter struct {
	types []string
}

func (f *jobTypeFilter) Name() string { return "job_type" }

func (f *jobTypeFilter) Apply(jobs []posting.Job) ([]posting.Job, Step) {
	wanted := lowerAll(f.types)
	return keep(jobs, func(job *posting.Job) bool {
		contractType := strings.ToLower(job.ContractType)
		if contractType == "" || contractType == "not specified" {
			return true
		}
		for _, t := range wanted {
			if strings.Contains(contractType, t) {
				return true
			}
		}
		return false
	})
}

// workModeFilter keeps jobs mentioning any requested work mode in title or
// description. Jobs that mention no work mode at all are kept.
type workModeFilter struct {
	modes []string
}

var knownWorkModes = []string{"remote", "hybrid", "on-site", "onsite", "office"}

func (f *workModeFilter) Name() string { return "work_mode" }

func (f *workModeFilter) Apply(jobs []posting.Job) ([]posting.Job, Step) {
	wanted := lowerAll(f.modes)
	return keep(jobs, func(job *posting.Job) bool {
		text := strings.ToLower(job.Description) + " " + strings.ToLower(job.Title)
		for _, mode := range wanted {
			if strings.Contains(text, mode) {
				return true
			}
		}
		for _, mode := range knownWorkModes {
			if strings.Contains(text, mode) {
				return false
			}
		}
		return true
	})
}

// dateFilter keeps jobs posted at or after the cutoff. Jobs with a missing
// or unparseable date are kept.
type dateFilter struct {
	cutoff time.Time
}

func (f *dateFilter) Name() string { return "date_posted" }

func (f *dateFilter) Apply(jobs []posting.Job) ([]posting.Job, Step) {
	return keep(jobs, func(job *posting.Job) bool {
		posted, ok := parseDate(job.CreatedAt)
		if !ok {
			return true
		}
		return !posted.Before(f.cutoff)
	})
}

// matchScoreFilter keeps jobs at or above a minimum match score. Unlike the
// other filters, a job without a score counts as zero and is dropped.
type matchScoreFilter struct {
	min float64
}

func (f *matchScoreFilter) Name() string { return "match_score" }

func (f *matchScoreFilter) Apply(jobs []posting.Job) ([]posting.Job, Step) {
	return keep(jobs, func(job *posting.Job) bool {
		return scoreOrZero(job) >= f.min
	})
}

// salaryFilter keeps jobs whose stated salary range overlaps the requested
// range. Jobs with no salary information are kept.
type salaryFilter struct {
	min *float64
	max *float64
}

func (f *salaryFilter) Name() string { return "salary" }

func (f *salaryFilter) Apply(jobs []posting.Job) ([]posting.Job, Step) {
	return keep(jobs, func(job *posting.Job) bool {
		if job.SalaryMin == nil && job.SalaryMax == nil {
			return true
		}
		if f.min != nil && job.SalaryMax != nil && *job.SalaryMax < *f.min {
			return false
		}
		if f.max != nil && job.SalaryMin != nil && *job.SalaryMin > *f.max {
			return false
		}
		return true
	})
}

// distanceFilter keeps jobs within the maximum distance. Jobs without
// distance information are kept.
type distanceFilter struct {
	max float64
}

func (f *distanceFilter) Name() string { return "distance" }

func (f *distanceFilter) Apply(jobs []posting.Job) ([]posting.Job, Step) {
	return keep(jobs, func(job *posting.Job) bool {
		return job.DistanceMiles == nil || *job.DistanceMiles <= f.max
	})
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
