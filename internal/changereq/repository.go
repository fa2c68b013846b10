package changereq

import (
	"context"
	"strings"
)

// RowSource reads a published CSV export.
type RowSource interface {
	Rows(ctx context.Context, url string) ([][]string, error)
}

// MutationSink applies a mutation through the write relay.
type MutationSink interface {
	Apply(ctx context.Context, action string, payload map[string]string) error
}

// Export columns, fixed order.
const (
	colID = iota
	colUsername
	colField
	colOldValue
	colNewValue
	colStatus
	colResolvedBy
	colCreatedAt
	requestColumns
)

// Repository reads requests from the sheet and writes through the relay.
type Repository struct {
	source RowSource
	sink   MutationSink
	url    string
}

// NewRepository constructs a Repository.
func NewRepository(source RowSource, sink MutationSink, url string) *Repository {
	return &Repository{source: source, sink: sink, url: url}
}

// List returns every change request on the sheet.
func (r *Repository) List(ctx context.Context) ([]ChangeRequest, error) {
	rows, err := r.source.Rows(ctx, r.url)
	if err != nil {
		return nil, err
	}
	requests := make([]ChangeRequest, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < requestColumns {
			continue
		}
		requests = append(requests, ChangeRequest{
			ID:         strings.TrimSpace(row[colID]),
			Username:   strings.TrimSpace(row[colUsername]),
			Field:      strings.TrimSpace(row[colField]),
			OldValue:   row[colOldValue],
			NewValue:   row[colNewValue],
			Status:     Status(strings.TrimSpace(row[colStatus])),
			ResolvedBy: strings.TrimSpace(row[colResolvedBy]),
			CreatedAt:  strings.TrimSpace(row[colCreatedAt]),
		})
	}
	return requests, nil
}

// Append stores a new request.
func (r *Repository) Append(ctx context.Context, req ChangeRequest) error {
	return r.sink.Apply(ctx, "changereq.create", map[string]string{
		"id":         req.ID,
		"username":   req.Username,
		"field":      req.Field,
		"old_value":  req.OldValue,
		"new_value":  req.NewValue,
		"status":     string(req.Status),
		"created_at": req.CreatedAt,
	})
}

// SetStatus records a decision.
func (r *Repository) SetStatus(ctx context.Context, id string, status Status, resolvedBy string) error {
	return r.sink.Apply(ctx, "changereq.resolve", map[string]string{
		"id":          id,
		"status":      string(status),
		"resolved_by": resolvedBy,
	})
}
