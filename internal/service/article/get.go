package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Get returns an article by ID. Published articles are visible to anyone;
// drafts and scheduled articles only to their owner or an admin. Hidden
// records read by strangers come back as not found.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Article, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Get: %w", err)
	}
	if err := authorize(actor, a.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("article.Get: %w", err)
	}
	return a, nil
}

// GetBySlug returns an article by slug with the same visibility rules as Get.
func (s *Service) GetBySlug(ctx context.Context, actor domain.Actor, slug string) (*domain.Article, error) {
	a, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("article.GetBySlug: %w", err)
	}
	if err := authorize(actor, a.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("article.GetBySlug: %w", err)
	}
	return a, nil
}

// Related returns up to limit published articles sharing the category or a
// tag with the given article.
func (s *Service) Related(ctx context.Context, actor domain.Actor, id uuid.UUID, limit int) ([]domain.Article, error) {
	if limit <= 0 || limit > 10 {
		limit = 3
	}

	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Related: %w", err)
	}
	if err := authorize(actor, a.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("article.Related: %w", err)
	}

	related, err := s.articles.ListRelated(ctx, a.ID, a.CategorySlug, a.Tags, limit)
	if err != nil {
		return nil, fmt.Errorf("article.Related: %w", err)
	}
	return related, nil
}
