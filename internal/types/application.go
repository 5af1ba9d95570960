package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an application. The transition graph is
// unrestricted: any status may move to any other, so a hiring manager can
// correct a mistaken rejection or hire.
type Status string

// Application statuses.
const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusHired       Status = "hired"
)

// ParseStatus normalizes a raw status value. The second return value is
// false when the value is not one of the enumerated statuses.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected, StatusHired:
		return s, true
	default:
		return "", false
	}
}

// String returns the status as its wire value.
func (s Status) String() string { return string(s) }

// Application is a candidate's submission for a specific job. Only the
// status field is mutable after creation, and only through the lifecycle
// engine's transition operation.
type Application struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"job_id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	CoverLetter    string    `json:"cover_letter,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Portfolio      string    `json:"portfolio,omitempty"`
	Status         Status    `json:"status"`
	AppliedAt      time.Time `json:"applied_at"`
}

// ApplyRequest is the payload for applying to a job.
type ApplyRequest struct {
	CandidateID    uuid.UUID `json:"candidate_id" validate:"required"`
	CandidateName  string    `json:"candidate_name" validate:"required"`
	CandidateEmail string    `json:"candidate_email" validate:"required,email"`
	CoverLetter    string    `json:"cover_letter,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Portfolio      string    `json:"portfolio,omitempty" validate:"omitempty,url"`
}

// UpdateStatusRequest is the payload for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
