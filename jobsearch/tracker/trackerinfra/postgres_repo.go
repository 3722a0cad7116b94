package trackerinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/jobmatchai/backend/jobsearch/tracker"
	"github.com/jobmatchai/backend/pkg/kernel"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ============================================================================
// CRUD Operations
// ============================================================================

// Create records a new application
func (r *PostgresRepository) Create(ctx context.Context, app *tracker.Application) error {
	query := `
		INSERT INTO applications (
			id, job_id, job_title, company, location, salary_range,
			match_score, source, job_url, date_applied, notes, status
		) VALUES (
			:id, :job_id, :job_title, :company, :location, :salary_range,
			:match_score, :source, :job_url, :date_applied, :notes, :status
		)`

	_, err := r.db.NamedExecContext(ctx, query, app)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return tracker.ErrApplicationAlreadyExists().
				WithDetail("job_title", app.JobTitle).
				WithDetail("company", app.Company)
		}
		return tracker.ErrRegistry.NewWithCause(tracker.CodeStorageFailed, err).
			WithDetail("operation", "create")
	}
	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*tracker.Application, error) {
	query := `
		SELECT id, job_id, job_title, company, location, salary_range,
		       match_score, source, job_url, date_applied, notes, status
		FROM applications
		WHERE id = $1`

	var app tracker.Application
	err := r.db.GetContext(ctx, &app, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, tracker.ErrApplicationNotFound().WithDetail("id", id.String())
		}
		return nil, tracker.ErrRegistry.NewWithCause(tracker.CodeStorageFailed, err).
			WithDetail("id", id.String())
	}
	return &app, nil
}

// List retrieves all applications, newest first
func (r *PostgresRepository) List(ctx context.Context) ([]tracker.Application, error) {
	query := `
		SELECT id, job_id, job_title, company, location, salary_range,
		       match_score, source, job_url, date_applied, notes, status
		FROM applications
		ORDER BY date_applied DESC`

	apps := []tracker.Application{}
	if err := r.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, tracker.ErrRegistry.NewWithCause(tracker.CodeStorageFailed, err).
			WithDetail("operation", "list")
	}
	return apps, nil
}

// UpdateStatus persists a status change
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status tracker.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return tracker.ErrRegistry.NewWithCause(tracker.CodeStorageFailed, err).
			WithDetail("id", id.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return tracker.ErrRegistry.NewWithCause(tracker.CodeStorageFailed, err).
			WithDetail("id", id.String())
	}
	if rows == 0 {
		return tracker.ErrApplicationNotFound().WithDetail("id", id.String())
	}
	return nil
}

// HasApplied checks whether an application exists for a title+company pair
func (r *PostgresRepository) HasApplied(ctx context.Context, title, company string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM applications WHERE job_title = $1 AND company = $2`,
		title, company)
	if err != nil {
		return false, tracker.ErrRegistry.NewWithCause(tracker.CodeStorageFailed, err).
			WithDetail("operation", "check_applied")
	}
	return count > 0, nil
}

// ============================================================================
// Dashboard Statistics
// ============================================================================

// Stats computes dashboard analytics
func (r *PostgresRepository) Stats(ctx context.Context) (*tracker.Stats, error) {
	stats := &tracker.Stats{
		BySource:             map[string]int{},
		ApplicationsOverTime: []tracker.DateCount{},
		MatchScoreBands:      []tracker.BandCount{},
		TopCompanies:         []tracker.CompanyCount{},
	}

	if err := r.db.GetContext(ctx, &stats.TotalApplications,
		`SELECT COUNT(*) FROM applications`); err != nil {
		return nil, r.statsErr("total", err)
	}

	var avg sql.NullFloat64
	if err := r.db.GetContext(ctx, &avg,
		`SELECT ROUND(AVG(match_score)::numeric, 1) FROM applications WHERE match_score IS NOT NULL`); err != nil {
		return nil, r.statsErr("avg_match_score", err)
	}
	if avg.Valid {
		stats.AvgMatchScore = avg.Float64
	}

	var last sql.NullString
	if err := r.db.GetContext(ctx, &last,
		`SELECT MAX(date_applied)::text FROM applications`); err != nil {
		return nil, r.statsErr("last_applied", err)
	}
	if last.Valid {
		stats.LastApplied = &last.String
	}

	sourceRows := []struct {
		Source string `db:"source"`
		Count  int    `db:"count"`
	}{}
	if err := r.db.SelectContext(ctx, &sourceRows,
		`SELECT source, COUNT(*) AS count FROM applications GROUP BY source`); err != nil {
		return nil, r.statsErr("by_source", err)
	}
	for _, row := range sourceRows {
		stats.BySource[row.Source] = row.Count
	}

	if err := r.db.SelectContext(ctx, &stats.ApplicationsOverTime, `
		SELECT date_applied::date::text AS date, COUNT(*) AS count
		FROM applications
		WHERE date_applied >= NOW() - INTERVAL '7 days'
		GROUP BY date_applied::date
		ORDER BY date`); err != nil {
		return nil, r.statsErr("over_time", err)
	}

	if err := r.db.SelectContext(ctx, &stats.MatchScoreBands, `
		SELECT
			CASE
				WHEN match_score >= 90 THEN '90-100%'
				WHEN match_score >= 80 THEN '80-89%'
				WHEN match_score >= 70 THEN '70-79%'
				ELSE 'Below 70%'
			END AS range,
			COUNT(*) AS count
		FROM applications
		WHERE match_score IS NOT NULL
		GROUP BY range
		ORDER BY range DESC`); err != nil {
		return nil, r.statsErr("score_bands", err)
	}

	if err := r.db.SelectContext(ctx, &stats.TopCompanies, `
		SELECT company, COUNT(*) AS count
		FROM applications
		GROUP BY company
		ORDER BY count DESC
		LIMIT 5`); err != nil {
		return nil, r.statsErr("top_companies", err)
	}

	return stats, nil
}

func (r *PostgresRepository) statsErr(operation string, err error) error {
	return tracker.ErrRegistry.NewWithCause(tracker.CodeStorageFailed, err).
		WithDetail("operation", "stats_"+operation)
}
