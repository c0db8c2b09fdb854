// Package internship implements the internship application repository
// using PostgreSQL.
package internship

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/adapter/postgres"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Repo provides internship application persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new internship application repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const applicationColumns = `id, owner_id, full_name, email, university, resume_url,
	cover_letter, score, status, submitted_at, created_at, updated_at`

const insertApplication = `
INSERT INTO internship_applications (id, owner_id, full_name, email, university, resume_url,
	cover_letter, score, status, submitted_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + applicationColumns

const getApplicationByID = `
SELECT ` + applicationColumns + `
FROM internship_applications
WHERE id = $1`

const getApplicationByOwner = `
SELECT ` + applicationColumns + `
FROM internship_applications
WHERE owner_id = $1`

const setApplicationScore = `
UPDATE internship_applications
SET score = $1, updated_at = now()
WHERE id = $2`

// Create inserts a new application and returns the persisted record.
func (r *Repo) Create(ctx context.Context, a *domain.InternshipApplication) (*domain.InternshipApplication, error) {
	row := r.q(ctx).QueryRow(ctx, insertApplication,
		a.ID, a.OwnerID, a.FullName, a.Email, a.University, a.ResumeURL,
		a.CoverLetter, a.Score, a.Status, a.SubmittedAt, a.CreatedAt, a.UpdatedAt,
	)

	out, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "internship_application", a.ID)
	}
	return out, nil
}

// GetByID returns an application by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InternshipApplication, error) {
	out, err := scanApplication(r.q(ctx).QueryRow(ctx, getApplicationByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "internship_application", id)
	}
	return out, nil
}

// GetByOwner returns the application belonging to the given user.
// Each applicant has at most one.
func (r *Repo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.InternshipApplication, error) {
	out, err := scanApplication(r.q(ctx).QueryRow(ctx, getApplicationByOwner, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "internship_application", ownerID)
	}
	return out, nil
}

// Update applies a partial update. Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.InternshipUpdateParams) (*domain.InternshipApplication, error) {
	upd := psql.Update("internship_applications").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + applicationColumns)

	if p.FullName != nil {
		upd = upd.Set("full_name", *p.FullName)
	}
	if p.Email != nil {
		upd = upd.Set("email", *p.Email)
	}
	if p.University != nil {
		upd = upd.Set("university", *p.University)
	}
	if p.ResumeURL != nil {
		upd = upd.Set("resume_url", *p.ResumeURL)
	}
	if p.CoverLetter != nil {
		upd = upd.Set("cover_letter", *p.CoverLetter)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	out, err := scanApplication(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "internship_application", id)
	}
	return out, nil
}

// ApplyChange applies a workflow transition in a single UPDATE.
func (r *Repo) ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.InternshipApplication, error) {
	upd := psql.Update("internship_applications").
		Set("status", c.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + applicationColumns)

	if c.SubmittedAt != nil {
		upd = upd.Set("submitted_at", *c.SubmittedAt)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transition query: %w", err)
	}

	out, err := scanApplication(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "internship_application", id)
	}
	return out, nil
}

// SetScore stores a reviewer score on an application.
func (r *Repo) SetScore(ctx context.Context, id uuid.UUID, score int) error {
	tag, err := r.q(ctx).Exec(ctx, setApplicationScore, score, id)
	if err != nil {
		return postgres.MapError(err, "internship_application", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("internship_application %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// BulkSetStatus sets the status on every listed application and returns
// the number of rows changed.
func (r *Repo) BulkSetStatus(ctx context.Context, ids []uuid.UUID, status domain.Status) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := psql.Update("internship_applications").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk update query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "internship_application", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

// List returns a page of applications matching the filter plus the total count.
func (r *Repo) List(ctx context.Context, f domain.InternshipFilter) ([]domain.InternshipApplication, int, error) {
	page := f.Page.Normalize()

	where := filterWhere(f)

	total, err := r.count(ctx, where)
	if err != nil {
		return nil, 0, err
	}

	sel := psql.Select(applicationColumns).
		From("internship_applications").
		OrderBy("created_at DESC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))
	if len(where) > 0 {
		sel = sel.Where(where)
	}

	out, err := r.queryMany(ctx, sel)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListForExport returns up to maxRows applications matching the filter,
// oldest first, without pagination.
func (r *Repo) ListForExport(ctx context.Context, f domain.InternshipFilter, maxRows int) ([]domain.InternshipApplication, error) {
	sel := psql.Select(applicationColumns).
		From("internship_applications").
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(maxRows))
	if where := filterWhere(f); len(where) > 0 {
		sel = sel.Where(where)
	}
	return r.queryMany(ctx, sel)
}

func filterWhere(f domain.InternshipFilter) squirrel.And {
	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": *f.Status})
	}
	if f.ScoreMin != nil {
		where = append(where, squirrel.GtOrEq{"score": *f.ScoreMin})
	}
	return where
}

func (r *Repo) queryMany(ctx context.Context, sel squirrel.SelectBuilder) ([]domain.InternshipApplication, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "internship_application", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.InternshipApplication, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, postgres.MapError(err, "internship_application", uuid.Nil)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "internship_application", uuid.Nil)
	}
	return out, nil
}

func (r *Repo) count(ctx context.Context, where squirrel.And) (int, error) {
	sel := psql.Select("COUNT(*)").From("internship_applications")
	if len(where) > 0 {
		sel = sel.Where(where)
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "internship_application", uuid.Nil)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*domain.InternshipApplication, error) {
	var a domain.InternshipApplication
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.FullName, &a.Email, &a.University, &a.ResumeURL,
		&a.CoverLetter, &a.Score, &a.Status, &a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
