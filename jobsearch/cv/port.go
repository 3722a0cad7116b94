package cv

import (
	"context"

	"github.com/jobmatchai/backend/pkg/kernel"
)

type UploadRepository interface {
	// Create records an upload
	Create(ctx context.Context, upload *Upload) error

	// GetByID retrieves an upload by ID
	GetByID(ctx context.Context, id kernel.UploadID) (*Upload, error)

	// GetLatestByFilename retrieves the most recent upload for a filename
	GetLatestByFilename(ctx context.Context, filename string) (*Upload, error)

	// List retrieves uploads with pagination, newest first
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Upload], error)
}
