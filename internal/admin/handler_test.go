package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIssueHash(t *testing.T) {
	handler := NewHandler(slog.Default())

	rr := httptest.NewRecorder()
	handler.IssueHash(rr, httptest.NewRequest(http.MethodPost, "/api/admin/hash", strings.NewReader(`{"password":"correct horse"}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Hash string `json:"hash"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.Hash), []byte("correct horse")))
}

func TestIssueHashRejectsShortPassword(t *testing.T) {
	handler := NewHandler(slog.Default())
	rr := httptest.NewRecorder()
	handler.IssueHash(rr, httptest.NewRequest(http.MethodPost, "/api/admin/hash", strings.NewReader(`{"password":"1234567"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
