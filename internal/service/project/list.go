package project

import (
	"context"
	"fmt"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// List returns the public project listing: only APPROVED and FEATURED
// projects, featured first.
func (s *Service) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, domain.PageMeta, error) {
	// The public surface never exposes a status filter; pin the listing
	// to the public status set.
	f.Status = nil
	f.Statuses = domain.PublicStatuses(domain.KindProject)

	items, total, err := s.projects.List(ctx, f)
	if err != nil {
		return nil, domain.PageMeta{}, fmt.Errorf("project.List: %w", err)
	}
	return items, domain.NewPageMeta(total, f.Page), nil
}

// AdminList returns projects in any status, ordered as a review queue
// (by status, oldest submission first). Admin only.
func (s *Service) AdminList(ctx context.Context, actor domain.Actor, f domain.ProjectFilter) ([]domain.Project, domain.PageMeta, error) {
	if !actor.IsAdmin() {
		return nil, domain.PageMeta{}, fmt.Errorf("project.AdminList: %w", domain.ErrForbidden)
	}

	if f.Status != nil && !domain.KnownStatus(domain.KindProject, *f.Status) {
		return nil, domain.PageMeta{}, domain.NewValidationError("status", "unknown status")
	}

	f.AdminOrder = true

	items, total, err := s.projects.List(ctx, f)
	if err != nil {
		return nil, domain.PageMeta{}, fmt.Errorf("project.AdminList: %w", err)
	}
	return items, domain.NewPageMeta(total, f.Page), nil
}
