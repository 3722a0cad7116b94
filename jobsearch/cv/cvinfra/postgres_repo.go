package cvinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/jobmatchai/backend/jobsearch/cv"
	"github.com/jobmatchai/backend/pkg/kernel"
)

type PostgresUploadRepository struct {
	db *sqlx.DB
}

func NewPostgresUploadRepository(db *sqlx.DB) *PostgresUploadRepository {
	return &PostgresUploadRepository{db: db}
}

// Create records a new upload
func (r *PostgresUploadRepository) Create(ctx context.Context, upload *cv.Upload) error {
	query := `
		INSERT INTO cv_uploads (id, filename, file_path, ats_score, uploaded_at)
		VALUES (:id, :filename, :file_path, :ats_score, :uploaded_at)`

	_, err := r.db.NamedExecContext(ctx, query, upload)
	if err != nil {
		return cv.ErrRegistry.NewWithCause(cv.CodeStorageFailed, err).
			WithDetail("filename", upload.Filename)
	}
	return nil
}

// GetByID retrieves an upload by ID
func (r *PostgresUploadRepository) GetByID(ctx context.Context, id kernel.UploadID) (*cv.Upload, error) {
	query := `
		SELECT id, filename, file_path, ats_score, uploaded_at
		FROM cv_uploads
		WHERE id = $1`

	var upload cv.Upload
	err := r.db.GetContext(ctx, &upload, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cv.ErrUploadNotFound().WithDetail("id", id.String())
		}
		return nil, cv.ErrRegistry.NewWithCause(cv.CodeUploadNotFound, err).
			WithDetail("id", id.String())
	}
	return &upload, nil
}

// GetLatestByFilename retrieves the most recent upload for a filename
func (r *PostgresUploadRepository) GetLatestByFilename(ctx context.Context, filename string) (*cv.Upload, error) {
	query := `
		SELECT id, filename, file_path, ats_score, uploaded_at
		FROM cv_uploads
		WHERE filename = $1
		ORDER BY uploaded_at DESC
		LIMIT 1`

	var upload cv.Upload
	err := r.db.GetContext(ctx, &upload, query, filename)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cv.ErrUploadNotFound().WithDetail("filename", filename)
		}
		return nil, cv.ErrRegistry.NewWithCause(cv.CodeUploadNotFound, err).
			WithDetail("filename", filename)
	}
	return &upload, nil
}

// List retrieves uploads with pagination, newest first
func (r *PostgresUploadRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[cv.Upload], error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM cv_uploads`)
	if err != nil {
		return nil, cv.ErrRegistry.NewWithCause(cv.CodeUploadNotFound, err).
			WithDetail("operation", "count_all")
	}

	query := `
		SELECT id, filename, file_path, ats_score, uploaded_at
		FROM cv_uploads
		ORDER BY uploaded_at DESC
		LIMIT $1 OFFSET $2`

	uploads := []cv.Upload{}
	err = r.db.SelectContext(ctx, &uploads, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, cv.ErrRegistry.NewWithCause(cv.CodeUploadNotFound, err).
			WithDetail("operation", "list_paginated")
	}

	return kernel.NewPaginated(uploads, pagination, total), nil
}
