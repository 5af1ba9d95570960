// Package types provides type definitions for structured data used throughout the job portal.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a posting created by a hiring manager. The skills list is
// the set of required skills used by the matching engine; it is unique and
// order-preserving, and scoring reasons follow its declaration order.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description,omitempty"`
	Skills      []string  `json:"skills"`
	PostedBy    string    `json:"posted_by,omitempty"`
	PostedAt    time.Time `json:"posted_at"`
}

// CreateJobRequest is the payload for creating a job posting.
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Location    string   `json:"location,omitempty"`
	Salary      string   `json:"salary,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills" validate:"dive,required"`
	PostedBy    string   `json:"posted_by,omitempty" validate:"omitempty,email"`
}
