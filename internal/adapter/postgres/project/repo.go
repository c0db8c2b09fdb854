// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/adapter/postgres"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Repo provides project, media and flag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const projectColumns = `id, slug, owner_id, title, summary, team_name, description,
	team_members, demo_link, repo_link, stack, country, cover_image,
	status, submitted_at, featured_at, mod_notes, created_at, updated_at`

const insertProject = `
INSERT INTO projects (id, slug, owner_id, title, summary, team_name, description,
	team_members, demo_link, repo_link, stack, country, cover_image,
	status, submitted_at, featured_at, mod_notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
RETURNING ` + projectColumns

const getProjectByID = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1`

const getProjectBySlug = `
SELECT ` + projectColumns + `
FROM projects
WHERE slug = $1`

const projectSlugExists = `
SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1 AND id <> $2)`

const insertMedia = `
INSERT INTO project_media (id, project_id, url, type, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, project_id, url, type, created_at`

const listMedia = `
SELECT id, project_id, url, type, created_at
FROM project_media
WHERE project_id = $1
ORDER BY created_at ASC, id ASC`

const insertFlag = `
INSERT INTO project_flags (id, project_id, user_id, reason, resolved, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, project_id, user_id, reason, resolved, created_at`

const resolveFlag = `
UPDATE project_flags
SET resolved = true
WHERE id = $1`

// Create inserts a new project and returns the persisted record.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	row := r.q(ctx).QueryRow(ctx, insertProject,
		p.ID, p.Slug, p.OwnerID, p.Title, p.Summary, p.TeamName, p.Description,
		p.TeamMembers, p.DemoLink, p.RepoLink, p.Stack, p.Country, p.CoverImage,
		p.Status, p.SubmittedAt, p.FeaturedAt, p.ModNotes, p.CreatedAt, p.UpdatedAt,
	)

	out, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return out, nil
}

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	out, err := scanProject(r.q(ctx).QueryRow(ctx, getProjectByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return out, nil
}

// GetBySlug returns a project by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	out, err := scanProject(r.q(ctx).QueryRow(ctx, getProjectBySlug, slug))
	if err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}
	return out, nil
}

// Update applies a partial update. Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.ProjectUpdateParams) (*domain.Project, error) {
	upd := psql.Update("projects").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns)

	if p.Title != nil {
		upd = upd.Set("title", *p.Title)
	}
	if p.Slug != nil {
		upd = upd.Set("slug", *p.Slug)
	}
	if p.Summary != nil {
		upd = upd.Set("summary", *p.Summary)
	}
	if p.TeamName != nil {
		upd = upd.Set("team_name", *p.TeamName)
	}
	if p.Description != nil {
		upd = upd.Set("description", *p.Description)
	}
	if p.TeamMembers != nil {
		upd = upd.Set("team_members", *p.TeamMembers)
	}
	if p.DemoLink != nil {
		upd = upd.Set("demo_link", *p.DemoLink)
	}
	if p.RepoLink != nil {
		upd = upd.Set("repo_link", *p.RepoLink)
	}
	if p.Stack != nil {
		upd = upd.Set("stack", p.Stack)
	}
	if p.Country != nil {
		upd = upd.Set("country", *p.Country)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	out, err := scanProject(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return out, nil
}

// ApplyChange applies a workflow transition in a single UPDATE so status,
// timestamps and moderation notes can never be partially written.
func (r *Repo) ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Project, error) {
	upd := psql.Update("projects").
		Set("status", c.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns)

	if c.SubmittedAt != nil {
		upd = upd.Set("submitted_at", *c.SubmittedAt)
	}
	if c.FeaturedAt != nil {
		upd = upd.Set("featured_at", *c.FeaturedAt)
	} else if c.ClearFeaturedAt {
		upd = upd.Set("featured_at", nil)
	}
	if c.ModNotes != nil {
		upd = upd.Set("mod_notes", *c.ModNotes)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transition query: %w", err)
	}

	out, err := scanProject(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return out, nil
}

// SetCoverImage stores the cover image URL for a project.
func (r *Repo) SetCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE projects SET cover_image = $1, updated_at = now() WHERE id = $2`, url, id)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SlugExists reports whether another project already uses the slug.
func (r *Repo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.q(ctx).QueryRow(ctx, projectSlugExists, slug, excludeID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "project", uuid.Nil)
	}
	return exists, nil
}

// List returns a page of projects matching the filter plus the total count.
// Featured projects sort before the rest; within each group newest first.
// AdminOrder switches to the review-queue order: by status, oldest
// submission first.
func (r *Repo) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error) {
	page := f.Page.Normalize()

	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": *f.Status})
	}
	if len(f.Statuses) > 0 {
		where = append(where, squirrel.Eq{"status": f.Statuses})
	}
	if f.Team != nil {
		where = append(where, squirrel.ILike{"team_name": "%" + *f.Team + "%"})
	}
	if f.Country != nil {
		where = append(where, squirrel.Eq{"country": *f.Country})
	}
	if f.Stack != nil {
		where = append(where, squirrel.Expr("? = ANY(stack)", *f.Stack))
	}
	if f.Tag != nil {
		where = append(where, squirrel.Expr("? = ANY(stack)", *f.Tag))
	}

	total, err := r.count(ctx, where)
	if err != nil {
		return nil, 0, err
	}

	order := []string{"featured_at DESC NULLS LAST", "created_at DESC", "id ASC"}
	if f.AdminOrder {
		order = []string{"status ASC", "submitted_at ASC", "id ASC"}
	}

	sel := psql.Select(projectColumns).
		From("projects").
		OrderBy(order...).
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
		return nil, 0, postgres.MapError(err, "project", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "project", uuid.Nil)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "project", uuid.Nil)
	}
	return out, total, nil
}

func (r *Repo) count(ctx context.Context, where squirrel.And) (int, error) {
	sel := psql.Select("COUNT(*)").From("projects")
	if len(where) > 0 {
		sel = sel.Where(where)
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "project", uuid.Nil)
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Media operations
// ---------------------------------------------------------------------------

// AddMedia attaches a media record to a project.
func (r *Repo) AddMedia(ctx context.Context, m *domain.ProjectMedia) (*domain.ProjectMedia, error) {
	row := r.q(ctx).QueryRow(ctx, insertMedia, m.ID, m.ProjectID, m.URL, m.Type, m.CreatedAt)

	var out domain.ProjectMedia
	if err := row.Scan(&out.ID, &out.ProjectID, &out.URL, &out.Type, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "project_media", m.ProjectID)
	}
	return &out, nil
}

// ListMedia returns all media attached to a project, oldest first.
func (r *Repo) ListMedia(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMedia, error) {
	rows, err := r.q(ctx).Query(ctx, listMedia, projectID)
	if err != nil {
		return nil, postgres.MapError(err, "project_media", projectID)
	}
	defer rows.Close()

	out := make([]domain.ProjectMedia, 0)
	for rows.Next() {
		var m domain.ProjectMedia
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.URL, &m.Type, &m.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "project_media", projectID)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project_media", projectID)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Flag operations
// ---------------------------------------------------------------------------

// AddFlag records a user report against a project.
func (r *Repo) AddFlag(ctx context.Context, f *domain.ProjectFlag) (*domain.ProjectFlag, error) {
	row := r.q(ctx).QueryRow(ctx, insertFlag, f.ID, f.ProjectID, f.UserID, f.Reason, f.Resolved, f.CreatedAt)

	var out domain.ProjectFlag
	if err := row.Scan(&out.ID, &out.ProjectID, &out.UserID, &out.Reason, &out.Resolved, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "project_flag", f.ProjectID)
	}
	return &out, nil
}

// ListFlags returns flags, optionally restricted to unresolved ones,
// newest first.
func (r *Repo) ListFlags(ctx context.Context, unresolvedOnly bool) ([]domain.ProjectFlag, error) {
	sel := psql.Select("id, project_id, user_id, reason, resolved, created_at").
		From("project_flags").
		OrderBy("created_at DESC", "id ASC")
	if unresolvedOnly {
		sel = sel.Where(squirrel.Eq{"resolved": false})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flags query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project_flag", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.ProjectFlag, 0)
	for rows.Next() {
		var f domain.ProjectFlag
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.UserID, &f.Reason, &f.Resolved, &f.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "project_flag", uuid.Nil)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project_flag", uuid.Nil)
	}
	return out, nil
}

// ResolveFlag marks a flag as handled.
func (r *Repo) ResolveFlag(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, resolveFlag, id)
	if err != nil {
		return postgres.MapError(err, "project_flag", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project_flag %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Slug, &p.OwnerID, &p.Title, &p.Summary, &p.TeamName, &p.Description,
		&p.TeamMembers, &p.DemoLink, &p.RepoLink, &p.Stack, &p.Country, &p.CoverImage,
		&p.Status, &p.SubmittedAt, &p.FeaturedAt, &p.ModNotes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Stack == nil {
		p.Stack = []string{}
	}
	return &p, nil
}
