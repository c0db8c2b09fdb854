package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Flag records a report against a publicly visible project. Any
// authenticated user may flag.
func (s *Service) Flag(ctx context.Context, actor domain.Actor, projectID uuid.UUID, input FlagInput) (*domain.ProjectFlag, error) {
	if actor.IsAnonymous() {
		return nil, fmt.Errorf("project.Flag: %w", domain.ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.Flag: %w", err)
	}
	if err := authorize(actor, current.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("project.Flag: %w", err)
	}

	flag := &domain.ProjectFlag{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    actor.ID,
		Reason:    input.Reason,
		CreatedAt: time.Now(),
	}
	created, err := s.projects.AddFlag(ctx, flag)
	if err != nil {
		return nil, fmt.Errorf("project.Flag: %w", err)
	}

	s.log.Info("project flagged", "project_id", projectID, "flag_id", created.ID)
	return created, nil
}

// ListFlags returns reports for review. Admin only.
func (s *Service) ListFlags(ctx context.Context, actor domain.Actor, unresolvedOnly bool) ([]domain.ProjectFlag, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("project.ListFlags: %w", domain.ErrForbidden)
	}

	flags, err := s.projects.ListFlags(ctx, unresolvedOnly)
	if err != nil {
		return nil, fmt.Errorf("project.ListFlags: %w", err)
	}
	return flags, nil
}

// ResolveFlag marks a report as handled. Admin only.
func (s *Service) ResolveFlag(ctx context.Context, actor domain.Actor, flagID uuid.UUID) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("project.ResolveFlag: %w", domain.ErrForbidden)
	}

	if err := s.projects.ResolveFlag(ctx, flagID); err != nil {
		return fmt.Errorf("project.ResolveFlag: %w", err)
	}

	s.log.Info("flag resolved", "flag_id", flagID)
	return nil
}
