// Package changereq handles member-initiated profile change requests. The
// requests themselves live in the spreadsheet; this package enforces who may
// create one and who may decide it.
package changereq

// Status of a change request. Transitions only from New.
type Status string

const (
	StatusNew      Status = "NEW"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ChangeRequest is one pending or decided profile change.
type ChangeRequest struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Field      string `json:"field"`
	OldValue   string `json:"oldValue"`
	NewValue   string `json:"newValue"`
	Status     Status `json:"status"`
	ResolvedBy string `json:"resolvedBy,omitempty"`
	CreatedAt  string `json:"createdAt"`
}
