package changereq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Service enforces the change request lifecycle. Role gating sits in the
// router; the service re-checks the identity-sensitive parts (requester and
// resolver get recorded).
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateInput carries a new change request.
type CreateInput struct {
	Field    string
	OldValue string
	NewValue string
}

// Create files a change request on behalf of the session's member.
func (s *Service) Create(ctx context.Context, sess shared.Session, in CreateInput) (ChangeRequest, error) {
	if in.Field == "" {
		return ChangeRequest{}, fmt.Errorf("%w: field is required", shared.ErrBadInput)
	}
	if in.NewValue == in.OldValue {
		return ChangeRequest{}, fmt.Errorf("%w: new value equals old value", shared.ErrBadInput)
	}
	req := ChangeRequest{
		ID:        uuid.NewString(),
		Username:  sess.Username,
		Field:     in.Field,
		OldValue:  in.OldValue,
		NewValue:  in.NewValue,
		Status:    StatusNew,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Append(ctx, req); err != nil {
		return ChangeRequest{}, err
	}
	return req, nil
}

// List returns all requests, pending first is the sheet's own ordering.
func (s *Service) List(ctx context.Context) ([]ChangeRequest, error) {
	return s.repo.List(ctx)
}

// Resolve decides a pending request. Only NEW requests can transition.
func (s *Service) Resolve(ctx context.Context, sess shared.Session, id string, approve bool) (ChangeRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return ChangeRequest{}, err
	}
	var target *ChangeRequest
	for i := range requests {
		if requests[i].ID == id {
			target = &requests[i]
			break
		}
	}
	if target == nil {
		return ChangeRequest{}, fmt.Errorf("%w: change request %s", shared.ErrNotFound, id)
	}
	if target.Status != StatusNew {
		return ChangeRequest{}, fmt.Errorf("%w: request already %s", shared.ErrBadInput, target.Status)
	}

	status := StatusRejected
	if approve {
		status = StatusApproved
	}
	if err := s.repo.SetStatus(ctx, id, status, string(sess.Role)); err != nil {
		return ChangeRequest{}, err
	}
	target.Status = status
	target.ResolvedBy = string(sess.Role)
	return *target, nil
}
