// Package internship implements internship applications: one application
// per user, a reviewer-driven pipeline, scoring, bulk status moves and
// CSV export.
package internship

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/config"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// internshipRepo defines the repository interface needed by the service.
type internshipRepo interface {
	Create(ctx context.Context, a *domain.InternshipApplication) (*domain.InternshipApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InternshipApplication, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.InternshipApplication, error)
	Update(ctx context.Context, id uuid.UUID, p domain.InternshipUpdateParams) (*domain.InternshipApplication, error)
	ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.InternshipApplication, error)
	SetScore(ctx context.Context, id uuid.UUID, score int) error
	BulkSetStatus(ctx context.Context, ids []uuid.UUID, status domain.Status) (int, error)
	List(ctx context.Context, f domain.InternshipFilter) ([]domain.InternshipApplication, int, error)
	ListForExport(ctx context.Context, f domain.InternshipFilter, maxRows int) ([]domain.InternshipApplication, error)
}

// Service implements internship application operations.
type Service struct {
	log  *slog.Logger
	apps internshipRepo
	eng  *domain.Engine
	cfg  config.SubmissionsConfig
}

// NewService creates a new internship service instance.
func NewService(logger *slog.Logger, apps internshipRepo, engine *domain.Engine, cfg config.SubmissionsConfig) *Service {
	return &Service{
		log:  logger.With("service", "internship"),
		apps: apps,
		eng:  engine,
		cfg:  cfg,
	}
}

// authorize runs the access gate. Applications are never public, so read
// denials always come back as ErrNotFound.
func authorize(actor domain.Actor, rec domain.AccessRecord, action domain.Action) error {
	err := domain.Authorize(actor, rec, action)
	if err == nil {
		return nil
	}
	if action == domain.ActionRead && errors.Is(err, domain.ErrForbidden) {
		return fmt.Errorf("internship: %w", domain.ErrNotFound)
	}
	return err
}

// transition fetches, applies the workflow engine, and persists the change.
func (s *Service) transition(ctx context.Context, actor domain.Actor, id uuid.UUID, trg domain.Trigger, payload domain.TransitionPayload) (*domain.InternshipApplication, error) {
	current, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("internship.%s: %w", trg, err)
	}

	change, err := s.eng.Apply(current.Workflow(), trg, actor, payload)
	if err != nil {
		return nil, fmt.Errorf("internship.%s: %w", trg, err)
	}

	updated, err := s.apps.ApplyChange(ctx, id, change)
	if err != nil {
		return nil, fmt.Errorf("internship.%s: %w", trg, err)
	}

	s.log.Info("application status changed",
		"application_id", id,
		"trigger", trg.String(),
		"status", updated.Status.String(),
	)
	return updated, nil
}
