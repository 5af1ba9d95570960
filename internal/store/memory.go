package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/job-portal/internal/types"
)

// MemoryStore is an in-memory Store used for tests and --in-memory demo
// runs. All operations take the store lock, so the status update is an
// atomic read-modify-write per application.
type MemoryStore struct {
	mu           sync.RWMutex
	jobs         map[uuid.UUID]types.Job
	applications map[uuid.UUID]types.Application
	applyOrder   []uuid.UUID
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:         make(map[uuid.UUID]types.Job),
		applications: make(map[uuid.UUID]types.Application),
	}
}

// CreateJob stores a job, assigning an ID when absent.
func (m *MemoryStore) CreateJob(_ context.Context, job *types.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	m.jobs[job.ID] = *job
	return nil
}

// GetJob returns a copy of the stored job.
func (m *MemoryStore) GetJob(_ context.Context, jobID uuid.UUID) (*types.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return nil, ErrJobNotFound
	}
	return &job, nil
}

// ListJobs returns all jobs ordered by posting time.
func (m *MemoryStore) ListJobs(_ context.Context) ([]types.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	jobs := make([]types.Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].PostedAt.Before(jobs[j].PostedAt) })
	return jobs, nil
}

// ListApplicants returns a job's applications in application order.
func (m *MemoryStore) ListApplicants(_ context.Context, jobID uuid.UUID) ([]types.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.jobs[jobID]; !ok {
		return nil, ErrJobNotFound
	}
	apps := make([]types.Application, 0)
	for _, id := range m.applyOrder {
		app := m.applications[id]
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

// CreateApplication stores an application, assigning an ID when absent.
func (m *MemoryStore) CreateApplication(_ context.Context, app *types.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[app.JobID]; !ok {
		return ErrJobNotFound
	}
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	m.applications[app.ID] = *app
	m.applyOrder = append(m.applyOrder, app.ID)
	return nil
}

// GetApplication returns a copy of the stored application.
func (m *MemoryStore) GetApplication(_ context.Context, appID uuid.UUID) (*types.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	app, ok := m.applications[appID]
	if !ok {
		return nil, ErrApplicationNotFound
	}
	return &app, nil
}

// UpdateStatus atomically replaces the stored status and returns the
// updated application.
func (m *MemoryStore) UpdateStatus(_ context.Context, appID uuid.UUID, status types.Status) (*types.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	app, ok := m.applications[appID]
	if !ok {
		return nil, ErrApplicationNotFound
	}
	app.Status = status
	m.applications[appID] = app
	return &app, nil
}
