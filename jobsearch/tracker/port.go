package tracker

import (
	"context"

	"github.com/jobmatchai/backend/pkg/kernel"
)

type Repository interface {
	// Create records a new application
	Create(ctx context.Context, app *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// List retrieves all applications, newest first
	List(ctx context.Context) ([]Application, error)

	// UpdateStatus persists a status change
	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status Status) error

	// HasApplied checks whether an application exists for a title+company pair
	HasApplied(ctx context.Context, title, company string) (bool, error)

	// Stats computes dashboard analytics
	Stats(ctx context.Context) (*Stats, error)
}
