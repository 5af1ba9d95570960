package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/job-portal/internal/lifecycle"
	"github.com/jonathan/job-portal/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Persistence failures fall through to 500.
func HTTPStatus(err error) int {
	var invalidStatus *lifecycle.ErrInvalidStatus
	switch {
	case errors.As(err, &invalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrJobNotFound), errors.Is(err, store.ErrApplicationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
