// Package article implements editorial article operations: authoring,
// scheduling, publishing and public listing.
package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// articleRepo defines the repository interface needed by the article service.
type articleRepo interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, p domain.ArticleUpdateParams) (*domain.Article, error)
	ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, int, error)
	ListRelated(ctx context.Context, excludeID uuid.UUID, category *string, tags []string, limit int) ([]domain.Article, error)
}

// Service implements article operations.
type Service struct {
	log      *slog.Logger
	articles articleRepo
	engine   *domain.Engine
}

// NewService creates a new article service instance.
func NewService(logger *slog.Logger, articles articleRepo, engine *domain.Engine) *Service {
	return &Service{
		log:      logger.With("service", "article"),
		articles: articles,
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
		return fmt.Errorf("article: %w", domain.ErrNotFound)
	}
	return err
}

// ensureSlugFree is the fast-path slug check. The unique index stays
// authoritative: a concurrent insert still surfaces ErrDuplicateSlug
// from the write itself.
func (s *Service) ensureSlugFree(ctx context.Context, slug string, excludeID uuid.UUID) error {
	taken, err := s.articles.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("slug %q: %w", slug, domain.ErrDuplicateSlug)
	}
	return nil
}
