// Package store provides persistence for jobs and applications.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jonathan/job-portal/internal/types"
)

// Lookup failures surfaced unchanged to callers.
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
)

// JobStore provides read access to jobs and their applicants.
type JobStore interface {
	CreateJob(ctx context.Context, job *types.Job) error
	GetJob(ctx context.Context, jobID uuid.UUID) (*types.Job, error)
	ListJobs(ctx context.Context) ([]types.Job, error)
	ListApplicants(ctx context.Context, jobID uuid.UUID) ([]types.Application, error)
}

// ApplicationStore provides access to applications. UpdateStatus must be a
// single atomic read-modify-write per application so concurrent transitions
// cannot silently overwrite one another.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *types.Application) error
	GetApplication(ctx context.Context, appID uuid.UUID) (*types.Application, error)
	UpdateStatus(ctx context.Context, appID uuid.UUID, status types.Status) (*types.Application, error)
}

// Store combines the job and application stores.
type Store interface {
	JobStore
	ApplicationStore
}
