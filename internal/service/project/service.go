// Package project implements team project submissions: authoring, the
// moderation workflow, media attachments and abuse flags.
package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// projectRepo defines the repository interface needed by the project service.
type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, p domain.ProjectUpdateParams) (*domain.Project, error)
	ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Project, error)
	SetCoverImage(ctx context.Context, id uuid.UUID, url string) error
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error)
	AddMedia(ctx context.Context, m *domain.ProjectMedia) (*domain.ProjectMedia, error)
	ListMedia(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMedia, error)
	AddFlag(ctx context.Context, f *domain.ProjectFlag) (*domain.ProjectFlag, error)
	ListFlags(ctx context.Context, unresolvedOnly bool) ([]domain.ProjectFlag, error)
	ResolveFlag(ctx context.Context, id uuid.UUID) error
}

// mediaStore stores uploaded media bytes and returns a public URL.
type mediaStore interface {
	Store(ctx context.Context, name string, contentType string, data []byte) (url string, err error)
}

// Service implements project operations.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	media    mediaStore
	engine   *domain.Engine
}

// NewService creates a new project service instance.
func NewService(logger *slog.Logger, projects projectRepo, media mediaStore, engine *domain.Engine) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		media:    media,
		engine:   engine,
	}
}

// authorize runs the access gate. Read denials on hidden records come back
// as ErrNotFound so strangers cannot probe for existence.
func authorize(actor domain.Actor, rec domain.AccessRecord, action domain.Action) error {
	err := domain.Authorize(actor, rec, action)
	if err == nil {
		return nil
	}
	if action == domain.ActionRead && errors.Is(err, domain.ErrForbidden) {
		return fmt.Errorf("project: %w", domain.ErrNotFound)
	}
	return err
}

func (s *Service) ensureSlugFree(ctx context.Context, slug string, excludeID uuid.UUID) error {
	taken, err := s.projects.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("slug %q: %w", slug, domain.ErrDuplicateSlug)
	}
	return nil
}

// transition fetches, applies the workflow engine, and persists the change.
func (s *Service) transition(ctx context.Context, actor domain.Actor, id uuid.UUID, trg domain.Trigger, payload domain.TransitionPayload) (*domain.Project, error) {
	current, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.%s: %w", trg, err)
	}

	change, err := s.engine.Apply(current.Workflow(), trg, actor, payload)
	if err != nil {
		return nil, fmt.Errorf("project.%s: %w", trg, err)
	}

	updated, err := s.projects.ApplyChange(ctx, id, change)
	if err != nil {
		return nil, fmt.Errorf("project.%s: %w", trg, err)
	}

	s.log.Info("project status changed",
		"project_id", id,
		"trigger", trg.String(),
		"status", updated.Status.String(),
	)
	return updated, nil
}
