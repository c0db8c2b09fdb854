// Package startup implements the startup directory: owner authoring, the
// reviewer decision workflow and the featured toggle.
package startup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// startupRepo defines the repository interface needed by the startup service.
type startupRepo interface {
	Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Startup, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Startup, error)
	Update(ctx context.Context, id uuid.UUID, p domain.StartupUpdateParams) (*domain.Startup, error)
	ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Startup, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, f domain.StartupFilter) ([]domain.Startup, int, error)
}

// Service implements startup directory operations.
type Service struct {
	log      *slog.Logger
	startups startupRepo
	engine   *domain.Engine
}

// NewService creates a new startup service instance.
func NewService(logger *slog.Logger, startups startupRepo, engine *domain.Engine) *Service {
	return &Service{
		log:      logger.With("service", "startup"),
		startups: startups,
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
		return fmt.Errorf("startup: %w", domain.ErrNotFound)
	}
	return err
}

func (s *Service) ensureSlugFree(ctx context.Context, slug string, excludeID uuid.UUID) error {
	taken, err := s.startups.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("slug %q: %w", slug, domain.ErrDuplicateSlug)
	}
	return nil
}

// transition fetches, applies the workflow engine, and persists the change.
func (s *Service) transition(ctx context.Context, actor domain.Actor, id uuid.UUID, trg domain.Trigger, payload domain.TransitionPayload) (*domain.Startup, error) {
	current, err := s.startups.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("startup.%s: %w", trg, err)
	}

	change, err := s.engine.Apply(current.Workflow(), trg, actor, payload)
	if err != nil {
		return nil, fmt.Errorf("startup.%s: %w", trg, err)
	}

	updated, err := s.startups.ApplyChange(ctx, id, change)
	if err != nil {
		return nil, fmt.Errorf("startup.%s: %w", trg, err)
	}

	s.log.Info("startup status changed",
		"startup_id", id,
		"trigger", trg.String(),
		"status", updated.Status.String(),
	)
	return updated, nil
}
