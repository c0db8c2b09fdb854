package article

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Publish makes an article publicly visible immediately. Publishing an
// already published article refreshes its publication time.
func (s *Service) Publish(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Article, error) {
	return s.transition(ctx, actor, id, domain.TriggerPublish, domain.TransitionPayload{})
}

// Schedule queues an article for publication at a future time.
func (s *Service) Schedule(ctx context.Context, actor domain.Actor, id uuid.UUID, input ScheduleInput) (*domain.Article, error) {
	if err := input.Validate(time.Now()); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, id, domain.TriggerSchedule, domain.TransitionPayload{
		PublishAt: &input.PublishAt,
	})
}

func (s *Service) transition(ctx context.Context, actor domain.Actor, id uuid.UUID, trg domain.Trigger, payload domain.TransitionPayload) (*domain.Article, error) {
	current, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.%s: %w", trg, err)
	}

	change, err := s.engine.Apply(current.Workflow(), trg, actor, payload)
	if err != nil {
		return nil, fmt.Errorf("article.%s: %w", trg, err)
	}

	updated, err := s.articles.ApplyChange(ctx, id, change)
	if err != nil {
		return nil, fmt.Errorf("article.%s: %w", trg, err)
	}

	s.log.Info("article status changed",
		"article_id", id,
		"trigger", trg.String(),
		"status", updated.Status.String(),
	)
	return updated, nil
}
