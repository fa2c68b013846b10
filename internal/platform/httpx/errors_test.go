package httpx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{shared.ErrUnauthenticated, http.StatusUnauthorized},
		{shared.ErrInvalidCredentials, http.StatusUnauthorized},
		{shared.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: field missing", shared.ErrBadInput), http.StatusBadRequest},
		{shared.ErrNotFound, http.StatusNotFound},
		{shared.ErrUpstream, http.StatusBadGateway},
		{shared.ErrConfigMissing, http.StatusInternalServerError},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		RespondError(rr, tc.err)
		assert.Equal(t, tc.status, rr.Code, "error %v", tc.err)
		assert.Contains(t, rr.Body.String(), `"error"`)
	}
}
