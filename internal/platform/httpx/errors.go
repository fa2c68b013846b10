package httpx

import (
	"errors"
	"net/http"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

// RespondError maps domain errors onto the uniform JSON failure shape.
// Authorization outcomes keep 401 and 403 distinguishable so callers can
// tell "log in" apart from "not permitted".
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrUnauthenticated):
		Error(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, shared.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, shared.ErrForbidden):
		Error(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, shared.ErrBadInput):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, shared.ErrUpstream):
		Error(w, http.StatusBadGateway, "upstream unavailable")
	case errors.Is(err, shared.ErrConfigMissing):
		// Deployment defect, not a user error; say so.
		Error(w, http.StatusInternalServerError, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
