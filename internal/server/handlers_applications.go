package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/job-portal/internal/types"
)

// handleApply creates an application for a job. The acknowledgement email
// is sent best-effort by the lifecycle engine.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := s.engine.Apply(r.Context(), jobID, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, app)
}

// handleGetApplication retrieves an application by ID.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	appID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	app, err := s.store.GetApplication(r.Context(), appID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleUpdateStatus applies a status transition through the lifecycle
// engine. A committed transition returns 200 even when the notification
// could not be delivered; the result carries that outcome separately.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	appID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Transition(r.Context(), appID, req.Status)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
