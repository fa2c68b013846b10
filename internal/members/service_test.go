package members

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

type stubSource struct {
	rows map[string][][]string
	err  error
}

func (s *stubSource) Rows(ctx context.Context, url string) ([][]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows[url], nil
}

type recordingSink struct {
	action  string
	payload map[string]string
}

func (s *recordingSink) Apply(ctx context.Context, action string, payload map[string]string) error {
	s.action = action
	s.payload = payload
	return nil
}

func rosterRows() [][]string {
	return [][]string{
		{"name", "username", "email", "birthdate", "lessons"},
		{"Zoe Abel", "zoe", "zoe@example.org", "2001-04-05", "Ballett I"},
		{"Änne Otto", "aenne", "aenne@example.org", "1999-12-24", "Ballett I;Jazz"},
		{"Anna Müller", "anna", "anna@example.org", "1995-06-17", "Jazz"},
	}
}

func newTestService(rows map[string][][]string) *Service {
	repo := NewRepository(&stubSource{rows: rows}, &recordingSink{}, "roster", "creds")
	return NewService(repo)
}

func TestListSortsWithGermanCollation(t *testing.T) {
	svc := newTestService(map[string][][]string{"roster": rosterRows()})

	members, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 3)

	// Ä sorts with A, not after Z.
	assert.Equal(t, "Änne Otto", members[0].Name)
	assert.Equal(t, "Anna Müller", members[1].Name)
	assert.Equal(t, "Zoe Abel", members[2].Name)
	assert.Equal(t, []string{"Ballett I", "Jazz"}, members[0].Lessons)
}

func TestProfile(t *testing.T) {
	svc := newTestService(map[string][][]string{"roster": rosterRows()})

	member, err := svc.Profile(context.Background(), "anna")
	require.NoError(t, err)
	assert.Equal(t, "Anna Müller", member.Name)

	_, err = svc.Profile(context.Background(), "nobody")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCredentialLookup(t *testing.T) {
	repo := NewRepository(&stubSource{rows: map[string][][]string{
		"creds": {
			{"username", "hash", "must_change"},
			{"anna", "$2a$10$hash", "1"},
		},
	}}, &recordingSink{}, "roster", "creds")

	cred, err := repo.Credential(context.Background(), "anna")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", cred.PasswordHash)
	assert.True(t, cred.MustChangePassword)

	_, err = repo.Credential(context.Background(), "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStoreHashGoesThroughRelay(t *testing.T) {
	sink := &recordingSink{}
	repo := NewRepository(&stubSource{}, sink, "roster", "creds")

	require.NoError(t, repo.StoreHash(context.Background(), "anna", "$2a$10$new"))
	assert.Equal(t, "member.password", sink.action)
	assert.Equal(t, "anna", sink.payload["username"])
	assert.Equal(t, "$2a$10$new", sink.payload["hash"])
}

func TestListPropagatesUpstreamFailure(t *testing.T) {
	repo := NewRepository(&stubSource{err: shared.ErrUpstream}, &recordingSink{}, "roster", "creds")
	_, err := NewService(repo).List(context.Background())
	assert.ErrorIs(t, err, shared.ErrUpstream)
}
