package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-portal/internal/types"
)

// PostgresStore is the production Store backed by a pgx connection pool.
// The status update is a single UPDATE ... RETURNING statement, so it is
// atomic per application row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateJob inserts a job posting.
func (s *PostgresStore) CreateJob(ctx context.Context, job *types.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, company, location, salary, description, skills, posted_by, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		job.ID, job.Title, job.Company, job.Location, job.Salary, job.Description, job.Skills, job.PostedBy, job.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJob retrieves a job posting by ID.
func (s *PostgresStore) GetJob(ctx context.Context, jobID uuid.UUID) (*types.Job, error) {
	var job types.Job
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, company, location, salary, description, skills, posted_by, posted_at
		 FROM jobs WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Description, &job.Skills, &job.PostedBy, &job.PostedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListJobs retrieves all job postings, oldest first.
func (s *PostgresStore) ListJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, company, location, salary, description, skills, posted_by, posted_at
		 FROM jobs ORDER BY posted_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		var job types.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Description, &job.Skills, &job.PostedBy, &job.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ListApplicants retrieves a job's applications in application order.
func (s *PostgresStore) ListApplicants(ctx context.Context, jobID uuid.UUID) ([]types.Application, error) {
	if _, err := s.GetJob(ctx, jobID); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, job_id, candidate_id, candidate_name, candidate_email,
		        cover_letter, experience, portfolio, status, applied_at
		 FROM applications WHERE job_id = $1 ORDER BY applied_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		var app types.Application
		if err := scanApplication(rows.Scan, &app); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// CreateApplication inserts an application.
func (s *PostgresStore) CreateApplication(ctx context.Context, app *types.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO applications (id, job_id, candidate_id, candidate_name, candidate_email,
		                           cover_letter, experience, portfolio, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		app.ID, app.JobID, app.CandidateID, app.CandidateName, app.CandidateEmail,
		app.CoverLetter, app.Experience, app.Portfolio, app.Status, app.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetApplication retrieves an application by ID.
func (s *PostgresStore) GetApplication(ctx context.Context, appID uuid.UUID) (*types.Application, error) {
	var app types.Application
	err := s.pool.QueryRow(ctx,
		`SELECT id, job_id, candidate_id, candidate_name, candidate_email,
		        cover_letter, experience, portfolio, status, applied_at
		 FROM applications WHERE id = $1`,
		appID,
	).Scan(&app.ID, &app.JobID, &app.CandidateID, &app.CandidateName, &app.CandidateEmail,
		&app.CoverLetter, &app.Experience, &app.Portfolio, &app.Status, &app.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// UpdateStatus replaces the stored status in a single row write and returns
// the updated application.
func (s *PostgresStore) UpdateStatus(ctx context.Context, appID uuid.UUID, status types.Status) (*types.Application, error) {
	var app types.Application
	err := s.pool.QueryRow(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1
		 RETURNING id, job_id, candidate_id, candidate_name, candidate_email,
		           cover_letter, experience, portfolio, status, applied_at`,
		appID, status,
	).Scan(&app.ID, &app.JobID, &app.CandidateID, &app.CandidateName, &app.CandidateEmail,
		&app.CoverLetter, &app.Experience, &app.Portfolio, &app.Status, &app.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return &app, nil
}

// scanApplication maps a row onto an Application.
func scanApplication(scan func(dest ...any) error, app *types.Application) error {
	return scan(&app.ID, &app.JobID, &app.CandidateID, &app.CandidateName, &app.CandidateEmail,
		&app.CoverLetter, &app.Experience, &app.Portfolio, &app.Status, &app.AppliedAt)
}
