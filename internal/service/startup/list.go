package startup

import (
	"context"
	"fmt"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// List returns the public directory: approved entries only, featured first.
func (s *Service) List(ctx context.Context, f domain.StartupFilter) ([]domain.Startup, domain.PageMeta, error) {
	// The public surface never exposes a status filter; pin the listing
	// to approved entries.
	approved := domain.StartupApproved
	f.Status = &approved

	items, total, err := s.startups.List(ctx, f)
	if err != nil {
		return nil, domain.PageMeta{}, fmt.Errorf("startup.List: %w", err)
	}
	return items, domain.NewPageMeta(total, f.Page), nil
}

// ReviewList returns startups in any status. Reviewer or admin only.
func (s *Service) ReviewList(ctx context.Context, actor domain.Actor, f domain.StartupFilter) ([]domain.Startup, domain.PageMeta, error) {
	if !actor.CanModerate(domain.KindStartup) {
		return nil, domain.PageMeta{}, fmt.Errorf("startup.ReviewList: %w", domain.ErrForbidden)
	}

	if f.Status != nil && !domain.KnownStatus(domain.KindStartup, *f.Status) {
		return nil, domain.PageMeta{}, domain.NewValidationError("status", "unknown status")
	}

	items, total, err := s.startups.List(ctx, f)
	if err != nil {
		return nil, domain.PageMeta{}, fmt.Errorf("startup.ReviewList: %w", err)
	}
	return items, domain.NewPageMeta(total, f.Page), nil
}
