package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Update applies a partial edit to an article. Only the owner or an admin
// may edit. Changing the title regenerates the slug, which must still be
// unique across articles.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input UpdateInput) (*domain.Article, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	if err := authorize(actor, current.Access(), domain.ActionUpdate); err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	params := input.ArticleUpdateParams
	if input.Title != nil {
		slug := domain.Slugify(*input.Title)
		if slug != current.Slug {
			if err := s.ensureSlugFree(ctx, slug, id); err != nil {
				return nil, fmt.Errorf("article.Update: %w", err)
			}
			params.Slug = &slug
		}
	}

	updated, err := s.articles.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	s.log.Info("article updated", "article_id", id)
	return updated, nil
}

// Delete removes an article permanently. Only the owner or an admin may
// delete.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	current, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}

	if err := authorize(actor, current.Access(), domain.ActionDelete); err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}

	s.log.Info("article deleted", "article_id", id)
	return nil
}
