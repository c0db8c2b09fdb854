package startup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Create makes a new draft startup entry owned by the actor. The slug is
// derived from the name and must be unique across startups.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.Startup, error) {
	if actor.IsAnonymous() {
		return nil, fmt.Errorf("startup.Create: %w", domain.ErrUnauthorized)
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := domain.Slugify(input.Name)
	if err := s.ensureSlugFree(ctx, slug, uuid.Nil); err != nil {
		return nil, fmt.Errorf("startup.Create: %w", err)
	}

	now := time.Now()
	entry := &domain.Startup{
		ID:        uuid.New(),
		Slug:      slug,
		OwnerID:   actor.ID,
		Name:      input.Name,
		Pitch:     input.Pitch,
		Industry:  input.Industry,
		Stage:     input.Stage,
		Country:   input.Country,
		Tags:      input.Tags,
		Status:    domain.StartupDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	created, err := s.startups.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("startup.Create: %w", err)
	}

	s.log.Info("startup created", "startup_id", created.ID, "slug", created.Slug)
	return created, nil
}

// Update applies a partial edit. The owner may edit in any status, as may
// reviewers and admins; the slug never changes.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input UpdateInput) (*domain.Startup, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.startups.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("startup.Update: %w", err)
	}

	if err := authorize(actor, current.Access(), domain.ActionUpdate); err != nil {
		return nil, fmt.Errorf("startup.Update: %w", err)
	}

	updated, err := s.startups.Update(ctx, id, input.StartupUpdateParams)
	if err != nil {
		return nil, fmt.Errorf("startup.Update: %w", err)
	}

	s.log.Info("startup updated", "startup_id", id)
	return updated, nil
}

// Get returns a startup by ID with visibility rules: approved entries are
// public, everything else is owner/reviewer/admin only.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Startup, error) {
	entry, err := s.startups.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("startup.Get: %w", err)
	}
	if err := authorize(actor, entry.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("startup.Get: %w", err)
	}
	return entry, nil
}

// GetBySlug returns a startup by slug with the same visibility rules as Get.
func (s *Service) GetBySlug(ctx context.Context, actor domain.Actor, slug string) (*domain.Startup, error) {
	entry, err := s.startups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("startup.GetBySlug: %w", err)
	}
	if err := authorize(actor, entry.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("startup.GetBySlug: %w", err)
	}
	return entry, nil
}
