// Package startup implements the Startup repository using PostgreSQL.
package startup

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/adapter/postgres"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Repo provides startup persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new startup repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const startupColumns = `id, slug, owner_id, name, pitch, industry, stage, country,
	tags, featured, status, submitted_at, mod_notes, created_at, updated_at`

const insertStartup = `
INSERT INTO startups (id, slug, owner_id, name, pitch, industry, stage, country,
	tags, featured, status, submitted_at, mod_notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + startupColumns

const getStartupByID = `
SELECT ` + startupColumns + `
FROM startups
WHERE id = $1`

const getStartupBySlug = `
SELECT ` + startupColumns + `
FROM startups
WHERE slug = $1`

const startupSlugExists = `
SELECT EXISTS (SELECT 1 FROM startups WHERE slug = $1 AND id <> $2)`

const setStartupFeatured = `
UPDATE startups
SET featured = $1, updated_at = now()
WHERE id = $2`

// Create inserts a new startup and returns the persisted record.
func (r *Repo) Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error) {
	row := r.q(ctx).QueryRow(ctx, insertStartup,
		s.ID, s.Slug, s.OwnerID, s.Name, s.Pitch, s.Industry, s.Stage, s.Country,
		s.Tags, s.Featured, s.Status, s.SubmittedAt, s.ModNotes, s.CreatedAt, s.UpdatedAt,
	)

	out, err := scanStartup(row)
	if err != nil {
		return nil, postgres.MapError(err, "startup", s.ID)
	}
	return out, nil
}

// GetByID returns a startup by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Startup, error) {
	out, err := scanStartup(r.q(ctx).QueryRow(ctx, getStartupByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "startup", id)
	}
	return out, nil
}

// GetBySlug returns a startup by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Startup, error) {
	out, err := scanStartup(r.q(ctx).QueryRow(ctx, getStartupBySlug, slug))
	if err != nil {
		return nil, postgres.MapError(err, "startup", uuid.Nil)
	}
	return out, nil
}

// Update applies a partial update. Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.StartupUpdateParams) (*domain.Startup, error) {
	upd := psql.Update("startups").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + startupColumns)

	if p.Name != nil {
		upd = upd.Set("name", *p.Name)
	}
	if p.Pitch != nil {
		upd = upd.Set("pitch", *p.Pitch)
	}
	if p.Industry != nil {
		upd = upd.Set("industry", *p.Industry)
	}
	if p.Stage != nil {
		upd = upd.Set("stage", *p.Stage)
	}
	if p.Country != nil {
		upd = upd.Set("country", *p.Country)
	}
	if p.Tags != nil {
		upd = upd.Set("tags", p.Tags)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	out, err := scanStartup(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "startup", id)
	}
	return out, nil
}

// ApplyChange applies a workflow transition in a single UPDATE.
func (r *Repo) ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Startup, error) {
	upd := psql.Update("startups").
		Set("status", c.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + startupColumns)

	if c.SubmittedAt != nil {
		upd = upd.Set("submitted_at", *c.SubmittedAt)
	}
	if c.ModNotes != nil {
		upd = upd.Set("mod_notes", *c.ModNotes)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transition query: %w", err)
	}

	out, err := scanStartup(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "startup", id)
	}
	return out, nil
}

// SetFeatured toggles the directory spotlight flag.
func (r *Repo) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	tag, err := r.q(ctx).Exec(ctx, setStartupFeatured, featured, id)
	if err != nil {
		return postgres.MapError(err, "startup", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("startup %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SlugExists reports whether another startup already uses the slug.
func (r *Repo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.q(ctx).QueryRow(ctx, startupSlugExists, slug, excludeID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "startup", uuid.Nil)
	}
	return exists, nil
}

// List returns a page of startups matching the filter plus the total count.
// Featured entries sort first, then newest first.
func (r *Repo) List(ctx context.Context, f domain.StartupFilter) ([]domain.Startup, int, error) {
	page := f.Page.Normalize()

	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": *f.Status})
	}
	if f.Stage != nil {
		where = append(where, squirrel.Eq{"stage": *f.Stage})
	}
	if f.Country != nil {
		where = append(where, squirrel.Eq{"country": *f.Country})
	}
	if f.Industry != nil {
		where = append(where, squirrel.Eq{"industry": *f.Industry})
	}
	if f.Tag != nil {
		where = append(where, squirrel.Expr("? = ANY(tags)", *f.Tag))
	}

	total, err := r.count(ctx, where)
	if err != nil {
		return nil, 0, err
	}

	sel := psql.Select(startupColumns).
		From("startups").
		OrderBy("featured DESC", "created_at DESC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))
	if len(where) > 0 {
		sel = sel.Where(where)
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "startup", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.Startup, 0)
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "startup", uuid.Nil)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "startup", uuid.Nil)
	}
	return out, total, nil
}

func (r *Repo) count(ctx context.Context, where squirrel.And) (int, error) {
	sel := psql.Select("COUNT(*)").From("startups")
	if len(where) > 0 {
		sel = sel.Where(where)
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "startup", uuid.Nil)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStartup(row rowScanner) (*domain.Startup, error) {
	var s domain.Startup
	err := row.Scan(
		&s.ID, &s.Slug, &s.OwnerID, &s.Name, &s.Pitch, &s.Industry, &s.Stage, &s.Country,
		&s.Tags, &s.Featured, &s.Status, &s.SubmittedAt, &s.ModNotes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return &s, nil
}
