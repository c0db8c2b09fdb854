package internship

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Apply starts an application draft for the actor. Each user holds at most
// one application.
func (s *Service) Apply(ctx context.Context, actor domain.Actor, input ApplyInput) (*domain.InternshipApplication, error) {
	if actor.IsAnonymous() {
		return nil, fmt.Errorf("internship.Apply: %w", domain.ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, err := s.apps.GetByOwner(ctx, actor.ID)
	if err == nil {
		return nil, fmt.Errorf("internship.Apply: %w", domain.ErrAlreadyExists)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("internship.Apply: %w", err)
	}

	now := time.Now()
	app := &domain.InternshipApplication{
		ID:          uuid.New(),
		OwnerID:     actor.ID,
		FullName:    input.FullName,
		Email:       input.Email,
		University:  input.University,
		ResumeURL:   input.ResumeURL,
		CoverLetter: input.CoverLetter,
		Status:      domain.InternshipDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("internship.Apply: %w", err)
	}

	s.log.Info("application created", "application_id", created.ID)
	return created, nil
}

// Update applies a partial edit. Owners may only edit drafts; reviewers
// and admins may edit in any status.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input UpdateInput) (*domain.InternshipApplication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("internship.Update: %w", err)
	}

	if err := authorize(actor, current.Access(), domain.ActionUpdate); err != nil {
		return nil, fmt.Errorf("internship.Update: %w", err)
	}

	updated, err := s.apps.Update(ctx, id, input.InternshipUpdateParams)
	if err != nil {
		return nil, fmt.Errorf("internship.Update: %w", err)
	}

	s.log.Info("application updated", "application_id", id)
	return updated, nil
}

// Get returns an application by ID. Owner, reviewer and admin only.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.InternshipApplication, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("internship.Get: %w", err)
	}
	if err := authorize(actor, app.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("internship.Get: %w", err)
	}
	return app, nil
}

// GetMine returns the actor's own application.
func (s *Service) GetMine(ctx context.Context, actor domain.Actor) (*domain.InternshipApplication, error) {
	if actor.IsAnonymous() {
		return nil, fmt.Errorf("internship.GetMine: %w", domain.ErrUnauthorized)
	}

	app, err := s.apps.GetByOwner(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("internship.GetMine: %w", err)
	}
	return app, nil
}

// Submit hands the application to review, by the owner or a moderator.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.InternshipApplication, error) {
	return s.transition(ctx, actor, id, domain.TriggerSubmit, domain.TransitionPayload{})
}
