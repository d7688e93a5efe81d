// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/matiscalella/lms/pkg/httpx"
	"github.com/matiscalella/lms/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrBookNotFound),
		errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, domain.ErrRecordLinked),
		errors.Is(err, domain.ErrRecordAlreadyAssigned),
		errors.Is(err, domain.ErrRelinkNotAllowed):
		return http.StatusConflict // 409
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrPredefinedID),
		errors.Is(err, domain.ErrPreassignedLink):
		return http.StatusBadRequest // 400
	case domain.IsValidation(err):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
