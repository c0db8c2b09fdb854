package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Submit hands a project to moderation. Allowed from PENDING and
// CHANGES_REQUESTED, by the owner or an admin.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Project, error) {
	return s.transition(ctx, actor, id, domain.TriggerSubmit, domain.TransitionPayload{})
}

// Approve accepts a submitted project. Featured selects the FEATURED
// spotlight status; otherwise any previous featuring is cleared. Admin only.
func (s *Service) Approve(ctx context.Context, actor domain.Actor, id uuid.UUID, input ApproveInput) (*domain.Project, error) {
	return s.transition(ctx, actor, id, domain.TriggerApprove, domain.TransitionPayload{
		Featured: input.Featured,
	})
}

// Reject declines a project with mandatory reviewer notes. Admin only.
func (s *Service) Reject(ctx context.Context, actor domain.Actor, id uuid.UUID, input ModerateInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, id, domain.TriggerReject, domain.TransitionPayload{
		Notes: input.Notes,
	})
}

// RequestChanges sends a project back to its owner with mandatory notes,
// reopening it for edits. Admin only.
func (s *Service) RequestChanges(ctx context.Context, actor domain.Actor, id uuid.UUID, input ModerateInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, id, domain.TriggerRequestChanges, domain.TransitionPayload{
		Notes: input.Notes,
	})
}
