package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Create makes a new pending project owned by the actor. The slug is
// derived from the title and must be unique across projects.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.Project, error) {
	if actor.IsAnonymous() {
		return nil, fmt.Errorf("project.Create: %w", domain.ErrUnauthorized)
	}

	input.Title = strings.TrimSpace(input.Title)
	input.TeamName = strings.TrimSpace(input.TeamName)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := domain.Slugify(input.Title)
	if err := s.ensureSlugFree(ctx, slug, uuid.Nil); err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	now := time.Now()
	project := &domain.Project{
		ID:          uuid.New(),
		Slug:        slug,
		OwnerID:     actor.ID,
		Title:       input.Title,
		Summary:     input.Summary,
		TeamName:    input.TeamName,
		Description: input.Description,
		TeamMembers: input.TeamMembers,
		DemoLink:    input.DemoLink,
		RepoLink:    input.RepoLink,
		Stack:       input.Stack,
		Country:     input.Country,
		Status:      domain.ProjectPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.Stack == nil {
		project.Stack = []string{}
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	s.log.Info("project created", "project_id", created.ID, "slug", created.Slug)
	return created, nil
}

// Update applies a partial edit. Non-admin owners may only edit while the
// project is PENDING or CHANGES_REQUESTED. Changing the title regenerates
// the slug, which must still be unique across projects.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input UpdateInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Update: %w", err)
	}

	if err := authorize(actor, current.Access(), domain.ActionUpdate); err != nil {
		return nil, fmt.Errorf("project.Update: %w", err)
	}

	params := input.ProjectUpdateParams
	if input.Title != nil {
		slug := domain.Slugify(*input.Title)
		if slug != current.Slug {
			if err := s.ensureSlugFree(ctx, slug, id); err != nil {
				return nil, fmt.Errorf("project.Update: %w", err)
			}
			params.Slug = &slug
		}
	}

	updated, err := s.projects.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("project.Update: %w", err)
	}

	s.log.Info("project updated", "project_id", id)
	return updated, nil
}

// Get returns a project by ID with visibility rules: approved and featured
// projects are public, everything else is owner/moderator only.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Get: %w", err)
	}
	if err := authorize(actor, p.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("project.Get: %w", err)
	}
	return p, nil
}

// GetBySlug returns a project by slug with the same visibility rules as Get.
func (s *Service) GetBySlug(ctx context.Context, actor domain.Actor, slug string) (*domain.Project, error) {
	p, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("project.GetBySlug: %w", err)
	}
	if err := authorize(actor, p.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("project.GetBySlug: %w", err)
	}
	return p, nil
}
