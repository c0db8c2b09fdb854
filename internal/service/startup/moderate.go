package startup

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Submit hands a startup entry to review, by the owner or a moderator.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Startup, error) {
	return s.transition(ctx, actor, id, domain.TriggerSubmit, domain.TransitionPayload{})
}

// Decide records the reviewer verdict on a startup. The target status is
// chosen by the reviewer; notes are optional and become the entry's
// moderation notes. Reviewer or admin only.
func (s *Service) Decide(ctx context.Context, actor domain.Actor, id uuid.UUID, input DecisionInput) (*domain.Startup, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, id, domain.TriggerDecision, domain.TransitionPayload{
		Target: input.Target,
		Notes:  input.Notes,
	})
}

// SetFeatured toggles the directory spotlight on a startup. Reviewer or
// admin only; the flag is independent of the workflow status.
func (s *Service) SetFeatured(ctx context.Context, actor domain.Actor, id uuid.UUID, featured bool) error {
	if !actor.CanModerate(domain.KindStartup) {
		return fmt.Errorf("startup.SetFeatured: %w", domain.ErrForbidden)
	}

	if _, err := s.startups.GetByID(ctx, id); err != nil {
		return fmt.Errorf("startup.SetFeatured: %w", err)
	}
	if err := s.startups.SetFeatured(ctx, id, featured); err != nil {
		return fmt.Errorf("startup.SetFeatured: %w", err)
	}

	s.log.Info("startup featured flag changed", "startup_id", id, "featured", featured)
	return nil
}
