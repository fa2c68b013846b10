package members

import (
	"context"
	"fmt"
	"strings"

	"github.com/arabesque-studio/arabesque/internal/auth"
	"github.com/arabesque-studio/arabesque/internal/shared"
)

// RowSource reads a published CSV export.
type RowSource interface {
	Rows(ctx context.Context, url string) ([][]string, error)
}

// MutationSink applies a mutation through the write relay.
type MutationSink interface {
	Apply(ctx context.Context, action string, payload map[string]string) error
}

// Roster export columns, fixed order: name, username, email, birth date,
// semicolon-separated lesson names.
const (
	colName = iota
	colUsername
	colEmail
	colBirthDate
	colLessons
	memberColumns
)

// Credential export columns: username, bcrypt hash, must-change flag.
const (
	credColUsername = iota
	credColHash
	credColMustChange
	credColumns
)

// Repository reads members and credentials from the sheet and writes
// credential changes through the relay.
type Repository struct {
	source   RowSource
	sink     MutationSink
	roster   string
	creds    string
}

// NewRepository constructs a Repository bound to the two export URLs.
func NewRepository(source RowSource, sink MutationSink, rosterURL, credentialsURL string) *Repository {
	return &Repository{source: source, sink: sink, roster: rosterURL, creds: credentialsURL}
}

// List returns every member on the roster.
func (r *Repository) List(ctx context.Context) ([]Member, error) {
	rows, err := r.source.Rows(ctx, r.roster)
	if err != nil {
		return nil, err
	}
	members := make([]Member, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < memberColumns {
			continue // header or trailing short row
		}
		members = append(members, Member{
			Name:      strings.TrimSpace(row[colName]),
			Username:  strings.TrimSpace(row[colUsername]),
			Email:     strings.TrimSpace(row[colEmail]),
			BirthDate: strings.TrimSpace(row[colBirthDate]),
			Lessons:   splitLessons(row[colLessons]),
		})
	}
	return members, nil
}

// Find returns the member with the given username.
func (r *Repository) Find(ctx context.Context, username string) (Member, error) {
	members, err := r.List(ctx)
	if err != nil {
		return Member{}, err
	}
	for _, m := range members {
		if m.Username == username {
			return m, nil
		}
	}
	return Member{}, fmt.Errorf("%w: member %s", shared.ErrNotFound, username)
}

// Credential resolves a member login record.
func (r *Repository) Credential(ctx context.Context, username string) (auth.Credential, error) {
	rows, err := r.source.Rows(ctx, r.creds)
	if err != nil {
		return auth.Credential{}, err
	}
	for i, row := range rows {
		if i == 0 || len(row) < credColumns {
			continue
		}
		if strings.TrimSpace(row[credColUsername]) != username {
			continue
		}
		return auth.Credential{
			Username:           username,
			PasswordHash:       strings.TrimSpace(row[credColHash]),
			MustChangePassword: strings.TrimSpace(row[credColMustChange]) == "1",
		}, nil
	}
	return auth.Credential{}, fmt.Errorf("%w: credential for %s", shared.ErrNotFound, username)
}

// StoreHash persists a new password hash and clears the must-change flag.
func (r *Repository) StoreHash(ctx context.Context, username, hash string) error {
	return r.sink.Apply(ctx, "member.password", map[string]string{
		"username":    username,
		"hash":        hash,
		"must_change": "0",
	})
}

func splitLessons(raw string) []string {
	parts := strings.Split(raw, ";")
	lessons := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lessons = append(lessons, p)
		}
	}
	return lessons
}
