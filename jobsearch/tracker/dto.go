package tracker

import "github.com/jobmatchai/backend/jobsearch/posting"

// TrackApplicationRequest - DTO for recording an application
type TrackApplicationRequest struct {
	Job   posting.Job `json:"job" validate:"required"`
	Notes string      `json:"notes,omitempty"`
}

// TrackApplicationResponse - confirmation with the new application ID
type TrackApplicationResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"application_id"`
	Message       string `json:"message"`
}

// UpdateStatusRequest - DTO for the status update endpoint
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required"`
}

// CheckAppliedRequest - DTO for the duplicate-application check
type CheckAppliedRequest struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// Stats is the dashboard analytics payload.
type Stats struct {
	TotalApplications    int            `json:"total_applications"`
	AvgMatchScore        float64        `json:"avg_match_score"`
	LastApplied          *string        `json:"last_applied"`
	BySource             map[string]int `json:"by_source"`
	ApplicationsOverTime []DateCount    `json:"applications_over_time"`
	MatchScoreBands      []BandCount    `json:"match_score_distribution"`
	TopCompanies         []CompanyCount `json:"top_companies"`
}

// DateCount is one day of the applications-over-time series.
type DateCount struct {
	Date  string `json:"date" db:"date"`
	Count int    `json:"count" db:"count"`
}

// BandCount is one bucket of the match score distribution.
type BandCount struct {
	Range string `json:"range" db:"range"`
	Count int    `json:"count" db:"count"`
}

// CompanyCount is one entry of the most-applied-to companies list.
type CompanyCount struct {
	Company string `json:"company" db:"company"`
	Count   int    `json:"count" db:"count"`
}
