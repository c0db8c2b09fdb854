package article

import (
	"context"
	"fmt"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// List returns the public article listing: always pinned to PUBLISHED,
// regardless of any status the caller put in the filter, and hides
// articles whose publish date has not arrived yet.
func (s *Service) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, domain.PageMeta, error) {
	published := domain.ArticlePublished
	f.Status = &published
	f.PublicOnly = true

	items, total, err := s.articles.List(ctx, f)
	if err != nil {
		return nil, domain.PageMeta{}, fmt.Errorf("article.List: %w", err)
	}
	return items, domain.NewPageMeta(total, f.Page), nil
}

// AdminList returns articles in any status. Admin only.
func (s *Service) AdminList(ctx context.Context, actor domain.Actor, f domain.ArticleFilter) ([]domain.Article, domain.PageMeta, error) {
	if !actor.IsAdmin() {
		return nil, domain.PageMeta{}, fmt.Errorf("article.AdminList: %w", domain.ErrForbidden)
	}

	if f.Status != nil && !domain.KnownStatus(domain.KindArticle, *f.Status) {
		return nil, domain.PageMeta{}, domain.NewValidationError("status", "unknown status")
	}

	items, total, err := s.articles.List(ctx, f)
	if err != nil {
		return nil, domain.PageMeta{}, fmt.Errorf("article.AdminList: %w", err)
	}
	return items, domain.NewPageMeta(total, f.Page), nil
}
