package server

import (
	"net/http"
)

// handleMatch ranks a job's applicants against its required skills.
// Ranking is read-only; results are recomputed on every call and never
// cached.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	applicants, err := s.store.ListApplicants(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.ranker.Rank(r.Context(), job, applicants)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
