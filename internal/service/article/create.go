package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Create makes a new draft article owned by the actor. The slug is derived
// from the title and must be unique across articles.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.Article, error) {
	if actor.IsAnonymous() {
		return nil, fmt.Errorf("article.Create: %w", domain.ErrUnauthorized)
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := domain.Slugify(input.Title)
	if err := s.ensureSlugFree(ctx, slug, uuid.Nil); err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}

	now := time.Now()
	article := &domain.Article{
		ID:              uuid.New(),
		Slug:            slug,
		OwnerID:         actor.ID,
		Title:           input.Title,
		Content:         input.Content,
		Summary:         input.Summary,
		FeaturedImage:   input.FeaturedImage,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		CategorySlug:    input.CategorySlug,
		CategoryName:    input.CategoryName,
		Tags:            input.Tags,
		Status:          domain.ArticleDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}

	s.log.Info("article created", "article_id", created.ID, "slug", created.Slug)
	return created, nil
}
