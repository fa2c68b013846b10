package sheet_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabesque-studio/arabesque/internal/shared"
	"github.com/arabesque-studio/arabesque/internal/sheet"
)

func TestClientFetchesAndParses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("name,username\nAnna Müller,anna\n"))
	}))
	defer server.Close()

	client := sheet.NewClient(server.Client(), nil, 0, nil)
	rows, err := client.Rows(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"name", "username"}, {"Anna Müller", "anna"}}, rows)
}

func TestClientCachesSnapshot(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("a,b\n1,2\n"))
	}))
	defer server.Close()

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	client := sheet.NewClient(server.Client(), cache, time.Minute, nil)

	for i := 0; i < 3; i++ {
		rows, err := client.Rows(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	}
	assert.Equal(t, int32(1), hits.Load())

	// After the snapshot expires the export is fetched again.
	mr.FastForward(2 * time.Minute)
	_, err := client.Rows(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClientSurfacesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := sheet.NewClient(server.Client(), nil, 0, nil)
	_, err := client.Rows(context.Background(), server.URL)
	assert.ErrorIs(t, err, shared.ErrUpstream)

	// Unreachable host.
	server.Close()
	_, err = client.Rows(context.Background(), server.URL)
	assert.ErrorIs(t, err, shared.ErrUpstream)
}

func TestClientMissingURLIsConfigError(t *testing.T) {
	client := sheet.NewClient(nil, nil, 0, nil)
	_, err := client.Rows(context.Background(), "")
	assert.ErrorIs(t, err, shared.ErrConfigMissing)
}

func TestClientFetchSurvivesCallerCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("a,b\n1,2\n"))
	}))
	defer server.Close()

	client := sheet.NewClient(server.Client(), nil, 0, nil)

	// A caller whose context dies mid-flight must not poison the shared
	// fetch for everyone deduplicated onto it.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := client.Rows(ctx, server.URL)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
