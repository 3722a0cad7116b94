package tracker

import (
	"fmt"
	"slices"
	"time"

	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/jobmatchai/backend/pkg/kernel"
)

// Status represents the status of a tracked application
type Status string

const (
	StatusApplied      Status = "Applied"      // Initial state after tracking
	StatusInterviewing Status = "Interviewing" // In interview process
	StatusOffer        Status = "Offer"        // Offer received
	StatusAccepted     Status = "Accepted"     // Offer accepted
	StatusRejected     Status = "Rejected"     // Rejected by employer
	StatusWithdrawn    Status = "Withdrawn"    // Withdrawn by candidate
)

// ValidStatuses lists every status the API accepts.
var ValidStatuses = []Status{
	StatusApplied, StatusInterviewing, StatusOffer,
	StatusAccepted, StatusRejected, StatusWithdrawn,
}

func (s Status) IsValid() bool {
	return slices.Contains(ValidStatuses, s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusWithdrawn
}

type Application struct {
	ID          kernel.ApplicationID `db:"id" json:"id"`
	JobID       string               `db:"job_id" json:"job_id"`
	JobTitle    string               `db:"job_title" json:"job_title"`
	Company     string               `db:"company" json:"company"`
	Location    string               `db:"location" json:"location"`
	SalaryRange *string              `db:"salary_range" json:"salary_range,omitempty"`
	MatchScore  *float64             `db:"match_score" json:"match_score,omitempty"`
	Source      string               `db:"source" json:"source"`
	JobURL      string               `db:"job_url" json:"job_url"`
	DateApplied time.Time            `db:"date_applied" json:"date_applied"`
	Notes       string               `db:"notes" json:"notes"`
	Status      Status               `db:"status" json:"status"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the application is still in play
func (a *Application) IsActive() bool {
	return !a.Status.IsTerminal()
}

// CanUpdateStatus checks if status can be changed
func (a *Application) CanUpdateStatus(newStatus Status) bool {
	validTransitions := map[Status][]Status{
		StatusApplied: {
			StatusInterviewing,
			StatusRejected,
			StatusWithdrawn,
		},
		StatusInterviewing: {
			StatusOffer,
			StatusRejected,
			StatusWithdrawn,
		},
		StatusOffer: {
			StatusAccepted,
			StatusRejected,
			StatusWithdrawn,
		},
	}

	allowed, ok := validTransitions[a.Status]
	if !ok {
		return false // terminal statuses allow no transitions
	}
	return slices.Contains(allowed, newStatus)
}

// UpdateStatus updates the application status
func (a *Application) UpdateStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return ErrInvalidStatus().WithDetail("status", string(newStatus))
	}
	if !a.CanUpdateStatus(newStatus) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", string(a.Status)).
			WithDetail("new_status", string(newStatus))
	}

	a.Status = newStatus
	return nil
}

// NewFromJob builds an application record for a posting. Salary range is
// only formatted when the posting carries both bounds.
func NewFromJob(id kernel.ApplicationID, job *posting.Job, notes string) *Application {
	key := job.Key()
	app := &Application{
		ID:          id,
		JobID:       key.JobID,
		JobTitle:    job.Title,
		Company:     job.Company,
		Location:    job.Location,
		MatchScore:  job.MatchScore,
		Source:      key.Source,
		JobURL:      job.RedirectURL,
		DateApplied: time.Now().UTC(),
		Notes:       notes,
		Status:      StatusApplied,
	}
	if job.SalaryMin != nil && job.SalaryMax != nil {
		r := fmt.Sprintf("$%s - $%s", formatThousands(*job.SalaryMin), formatThousands(*job.SalaryMax))
		app.SalaryRange = &r
	}
	return app
}

// formatThousands renders a salary with comma grouping and no decimals.
func formatThousands(v float64) string {
	n := int64(v + 0.5)
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
