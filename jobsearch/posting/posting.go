package posting

import (
	"strings"

	"github.com/jobmatchai/backend/pkg/kernel"
)

// DefaultContractType is used when a source omits the contract type.
const DefaultContractType = "Not specified"

// Job is a normalized posting from any source. Salary, distance and match
// fields stay nil when the source (or the scorer) did not provide them, so
// downstream filters can treat missing and zero differently.
type Job struct {
	Source        string          `json:"source"`
	SourceJobID   string          `json:"job_id"`
	Title         string          `json:"title"`
	Company       string          `json:"company"`
	Location      string          `json:"location"`
	Description   string          `json:"description"`
	SalaryMin     *float64        `json:"salary_min"`
	SalaryMax     *float64        `json:"salary_max"`
	ContractType  string          `json:"contract_type"`
	CreatedAt     string          `json:"created"`
	RedirectURL   string          `json:"redirect_url"`
	DistanceMiles *float64        `json:"distance"`
	MatchScore    *float64        `json:"match_score,omitempty"`
	Breakdown     *MatchBreakdown `json:"match_breakdown,omitempty"`
}

// MatchBreakdown itemizes a job-to-profile match score.
type MatchBreakdown struct {
	Similarity      float64 `json:"text_similarity"`
	SkillMatch      float64 `json:"skill_match"`
	ExperienceMatch float64 `json:"experience_match"`
}

// Key returns the cross-source identity of the job.
func (j *Job) Key() kernel.JobKey {
	return kernel.JobKey{Source: j.Source, JobID: j.SourceJobID}
}

// DedupKey is the lowercased (title, company) pair used for cross-source
// deduplication.
type DedupKey struct {
	Title   string
	Company string
}

func (j *Job) DedupKey() DedupKey {
	return DedupKey{
		Title:   strings.ToLower(strings.TrimSpace(j.Title)),
		Company: strings.ToLower(strings.TrimSpace(j.Company)),
	}
}

// IsZero reports whether both parts are empty. Jobs with a zero dedup key
// are never deduplicated against each other.
func (k DedupKey) IsZero() bool { return k.Title == "" && k.Company == "" }

// Deduplicate removes jobs sharing a dedup key, keeping the first of each.
// Order is preserved.
func Deduplicate(jobs []Job) []Job {
	seen := make(map[DedupKey]struct{}, len(jobs))
	unique := make([]Job, 0, len(jobs))

	for _, job := range jobs {
		key := job.DedupKey()
		if key.IsZero() {
			unique = append(unique, job)
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, job)
	}
	return unique
}
