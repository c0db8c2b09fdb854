package internship

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// List returns applications matching the filter. Reviewer or admin only;
// applications are never listed publicly.
func (s *Service) List(ctx context.Context, actor domain.Actor, f domain.InternshipFilter) ([]domain.InternshipApplication, domain.PageMeta, error) {
	if !actor.CanModerate(domain.KindInternship) {
		return nil, domain.PageMeta{}, fmt.Errorf("internship.List: %w", domain.ErrForbidden)
	}

	if f.Status != nil && !domain.KnownStatus(domain.KindInternship, *f.Status) {
		return nil, domain.PageMeta{}, domain.NewValidationError("status", "unknown status")
	}

	items, total, err := s.apps.List(ctx, f)
	if err != nil {
		return nil, domain.PageMeta{}, fmt.Errorf("internship.List: %w", err)
	}
	return items, domain.NewPageMeta(total, f.Page), nil
}

var exportHeader = []string{
	"id", "full_name", "email", "university", "resume_url",
	"score", "status", "submitted_at", "created_at",
}

// ExportCSV streams applications matching the filter as CSV, oldest first.
// The row count is capped by configuration. Reviewer or admin only.
func (s *Service) ExportCSV(ctx context.Context, actor domain.Actor, f domain.InternshipFilter, w io.Writer) (int, error) {
	if !actor.CanModerate(domain.KindInternship) {
		return 0, fmt.Errorf("internship.ExportCSV: %w", domain.ErrForbidden)
	}
	if f.Status != nil && !domain.KnownStatus(domain.KindInternship, *f.Status) {
		return 0, domain.NewValidationError("status", "unknown status")
	}

	apps, err := s.apps.ListForExport(ctx, f, s.cfg.ExportMaxRows)
	if err != nil {
		return 0, fmt.Errorf("internship.ExportCSV: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("internship.ExportCSV: write header: %w", err)
	}
	for _, a := range apps {
		if err := cw.Write(exportRow(a)); err != nil {
			return 0, fmt.Errorf("internship.ExportCSV: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("internship.ExportCSV: flush: %w", err)
	}

	s.log.Info("applications exported", "rows", len(apps))
	return len(apps), nil
}

func exportRow(a domain.InternshipApplication) []string {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	score := ""
	if a.Score != nil {
		score = strconv.Itoa(*a.Score)
	}
	submitted := ""
	if a.SubmittedAt != nil {
		submitted = a.SubmittedAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	return []string{
		a.ID.String(),
		str(a.FullName),
		str(a.Email),
		str(a.University),
		str(a.ResumeURL),
		score,
		a.Status.String(),
		submitted,
		a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
