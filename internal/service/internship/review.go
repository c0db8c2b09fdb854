package internship

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Advance moves an application to a reviewer-chosen pipeline status.
// Reviewer or admin only.
func (s *Service) Advance(ctx context.Context, actor domain.Actor, id uuid.UUID, input AdvanceInput) (*domain.InternshipApplication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, id, domain.TriggerAdvance, domain.TransitionPayload{
		Target: input.Target,
	})
}

// Score records a reviewer score for an application. Reviewer or admin only.
func (s *Service) Score(ctx context.Context, actor domain.Actor, id uuid.UUID, input ScoreInput) error {
	if !actor.CanModerate(domain.KindInternship) {
		return fmt.Errorf("internship.Score: %w", domain.ErrForbidden)
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.apps.GetByID(ctx, id); err != nil {
		return fmt.Errorf("internship.Score: %w", err)
	}
	if err := s.apps.SetScore(ctx, id, input.Score); err != nil {
		return fmt.Errorf("internship.Score: %w", err)
	}

	s.log.Info("application scored", "application_id", id, "score", input.Score)
	return nil
}

// BulkAdvance moves a batch of applications to one target status in a
// single statement. Returns the number of rows moved. Reviewer or admin
// only; the batch size is capped by configuration.
func (s *Service) BulkAdvance(ctx context.Context, actor domain.Actor, input BulkStatusInput) (int, error) {
	if !actor.CanModerate(domain.KindInternship) {
		return 0, fmt.Errorf("internship.BulkAdvance: %w", domain.ErrForbidden)
	}
	if err := input.Validate(s.cfg.BulkMaxIDs); err != nil {
		return 0, err
	}

	moved, err := s.apps.BulkSetStatus(ctx, input.IDs, input.Target)
	if err != nil {
		return 0, fmt.Errorf("internship.BulkAdvance: %w", err)
	}

	s.log.Info("applications bulk moved",
		"requested", len(input.IDs),
		"moved", moved,
		"status", input.Target.String(),
	)
	return moved, nil
}
