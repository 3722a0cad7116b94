package trackersrv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jobmatchai/backend/jobsearch/tracker"
	"github.com/jobmatchai/backend/pkg/kernel"
	"github.com/jobmatchai/backend/pkg/logx"
)

type Service struct {
	repo tracker.Repository
}

// NewService creates a new application tracking service
func NewService(repo tracker.Repository) *Service {
	return &Service{repo: repo}
}

// Track records a new application for a posting.
func (s *Service) Track(ctx context.Context, req tracker.TrackApplicationRequest) (*tracker.TrackApplicationResponse, error) {
	if req.Job.Title == "" || req.Job.Company == "" {
		return nil, tracker.ErrInvalidApplicationData().
			WithDetail("reason", "job title and company are required")
	}

	app := tracker.NewFromJob(
		kernel.NewApplicationID(uuid.New().String()),
		&req.Job,
		req.Notes,
	)
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	logx.Infof("Tracked application %s: %s at %s", app.ID, app.JobTitle, app.Company)
	return &tracker.TrackApplicationResponse{
		Success:       true,
		ApplicationID: app.ID.String(),
		Message:       "Application tracked successfully",
	}, nil
}

// List returns all tracked applications, newest first.
func (s *Service) List(ctx context.Context) ([]tracker.Application, error) {
	return s.repo.List(ctx)
}

// UpdateStatus validates the transition against the current record before
// persisting it.
func (s *Service) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status tracker.Status) error {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := app.UpdateStatus(status); err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, app.Status); err != nil {
		return err
	}
	logx.Infof("Application %s moved to %s", id, status)
	return nil
}

// HasApplied checks whether an application exists for a title+company pair.
func (s *Service) HasApplied(ctx context.Context, title, company string) (bool, error) {
	return s.repo.HasApplied(ctx, title, company)
}

// Stats computes dashboard analytics.
func (s *Service) Stats(ctx context.Context) (*tracker.Stats, error) {
	return s.repo.Stats(ctx)
}

// ExportCSV renders all applications as a CSV document.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "job_id", "job_title", "company", "location", "salary_range",
		"match_score", "source", "job_url", "date_applied", "notes", "status",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, app := range apps {
		salaryRange := ""
		if app.SalaryRange != nil {
			salaryRange = *app.SalaryRange
		}
		matchScore := ""
		if app.MatchScore != nil {
			matchScore = strconv.FormatFloat(*app.MatchScore, 'f', 1, 64)
		}

		record := []string{
			app.ID.String(),
			app.JobID,
			app.JobTitle,
			app.Company,
			app.Location,
			salaryRange,
			matchScore,
			app.Source,
			app.JobURL,
			app.DateApplied.Format("2006-01-02 15:04:05"),
			app.Notes,
			string(app.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
