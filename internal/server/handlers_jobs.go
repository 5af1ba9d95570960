package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-portal/internal/types"
)

// ListJobsResponse is the payload for listing jobs.
type ListJobsResponse struct {
	Jobs  []types.Job `json:"jobs"`
	Count int         `json:"count"`
}

// handleCreateJob creates a job posting.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job := &types.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		Description: req.Description,
		Skills:      dedupeSkills(req.Skills),
		PostedBy:    req.PostedBy,
		PostedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateJob(r.Context(), job); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs lists all job postings.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListJobs(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if jobs == nil {
		jobs = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, ListJobsResponse{Jobs: jobs, Count: len(jobs)})
}

// handleGetJob retrieves a job posting by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleListApplicants lists a job's applications.
func (s *Server) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	apps, err := s.store.ListApplicants(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if apps == nil {
		apps = []types.Application{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applicants": apps,
		"count":      len(apps),
	})
}

// pathUUID parses a UUID path segment, writing a 400 on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// dedupeSkills removes duplicates while preserving declaration order, which
// the scorer's reason ordering depends on.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if !seen[skill] {
			seen[skill] = true
			out = append(out, skill)
		}
	}
	return out
}
