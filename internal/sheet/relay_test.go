package sheet_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabesque-studio/arabesque/internal/shared"
	"github.com/arabesque-studio/arabesque/internal/sheet"
)

func TestRelayAppliesMutation(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	relay := sheet.NewRelay(server.URL, "relay-secret", server.Client(), nil)
	err := relay.Apply(context.Background(), "member.password", map[string]string{
		"username": "anna",
		"hash":     "$2a$fake",
	})
	require.NoError(t, err)

	assert.Equal(t, "relay-secret", received["secret"])
	assert.Equal(t, "member.password", received["action"])
	payload := received["payload"].(map[string]any)
	assert.Equal(t, "anna", payload["username"])
}

func TestRelayRejectionIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	relay := sheet.NewRelay(server.URL, "wrong", server.Client(), nil)
	err := relay.Apply(context.Background(), "noop", nil)
	assert.ErrorIs(t, err, shared.ErrUpstream)
}

func TestRelayMissingConfig(t *testing.T) {
	relay := sheet.NewRelay("", "", nil, nil)
	err := relay.Apply(context.Background(), "noop", nil)
	assert.ErrorIs(t, err, shared.ErrConfigMissing)
}
