// Package article implements the Article repository using PostgreSQL.
package article

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/adapter/postgres"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new article repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const articleColumns = `id, slug, owner_id, title, content, summary, featured_image,
	meta_title, meta_description, category_slug, category_name, tags,
	status, published_at, created_at, updated_at`

const insertArticle = `
INSERT INTO articles (id, slug, owner_id, title, content, summary, featured_image,
	meta_title, meta_description, category_slug, category_name, tags,
	status, published_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING ` + articleColumns

const getArticleByID = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1`

const getArticleBySlug = `
SELECT ` + articleColumns + `
FROM articles
WHERE slug = $1`

const deleteArticle = `
DELETE FROM articles
WHERE id = $1`

const articleSlugExists = `
SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`

// Create inserts a new article and returns the persisted record.
func (r *Repo) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	row := r.q(ctx).QueryRow(ctx, insertArticle,
		a.ID, a.Slug, a.OwnerID, a.Title, a.Content, a.Summary, a.FeaturedImage,
		a.MetaTitle, a.MetaDescription, a.CategorySlug, a.CategoryName, a.Tags,
		a.Status, a.PublishedAt, a.CreatedAt, a.UpdatedAt,
	)

	out, err := scanArticle(row)
	if err != nil {
		return nil, postgres.MapError(err, "article", a.ID)
	}
	return out, nil
}

// GetByID returns an article by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	out, err := scanArticle(r.q(ctx).QueryRow(ctx, getArticleByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return out, nil
}

// GetBySlug returns an article by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	out, err := scanArticle(r.q(ctx).QueryRow(ctx, getArticleBySlug, slug))
	if err != nil {
		return nil, postgres.MapError(err, "article", uuid.Nil)
	}
	return out, nil
}

// Update applies a partial update. Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.ArticleUpdateParams) (*domain.Article, error) {
	upd := psql.Update("articles").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + articleColumns)

	if p.Title != nil {
		upd = upd.Set("title", *p.Title)
	}
	if p.Slug != nil {
		upd = upd.Set("slug", *p.Slug)
	}
	if p.Content != nil {
		upd = upd.Set("content", *p.Content)
	}
	if p.Summary != nil {
		upd = upd.Set("summary", *p.Summary)
	}
	if p.FeaturedImage != nil {
		upd = upd.Set("featured_image", *p.FeaturedImage)
	}
	if p.MetaTitle != nil {
		upd = upd.Set("meta_title", *p.MetaTitle)
	}
	if p.MetaDescription != nil {
		upd = upd.Set("meta_description", *p.MetaDescription)
	}
	if p.CategorySlug != nil {
		upd = upd.Set("category_slug", *p.CategorySlug)
	}
	if p.CategoryName != nil {
		upd = upd.Set("category_name", *p.CategoryName)
	}
	if p.Tags != nil {
		upd = upd.Set("tags", p.Tags)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	out, err := scanArticle(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return out, nil
}

// ApplyChange applies a workflow transition in a single UPDATE so status
// and timestamps can never be partially written.
func (r *Repo) ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Article, error) {
	upd := psql.Update("articles").
		Set("status", c.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + articleColumns)

	if c.PublishedAt != nil {
		upd = upd.Set("published_at", *c.PublishedAt)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transition query: %w", err)
	}

	out, err := scanArticle(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return out, nil
}

// Delete removes an article permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, deleteArticle, id)
	if err != nil {
		return postgres.MapError(err, "article", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SlugExists reports whether another article already uses the slug.
// excludeID skips the record itself on updates; pass uuid.Nil on create.
func (r *Repo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.q(ctx).QueryRow(ctx, articleSlugExists, slug, excludeID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "article", uuid.Nil)
	}
	return exists, nil
}

// List returns a page of articles matching the filter plus the total count.
func (r *Repo) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, int, error) {
	page := f.Page.Normalize()

	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": *f.Status})
	}
	if f.Category != nil {
		where = append(where, squirrel.Eq{"category_slug": *f.Category})
	}
	if f.Tag != nil {
		where = append(where, squirrel.Expr("? = ANY(tags)", *f.Tag))
	}
	if f.PublicOnly {
		where = append(where, squirrel.Expr("published_at <= now()"))
	}

	total, err := r.count(ctx, where)
	if err != nil {
		return nil, 0, err
	}

	sel := psql.Select(articleColumns).
		From("articles").
		OrderBy("published_at DESC NULLS LAST", "id ASC").
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
		return nil, 0, postgres.MapError(err, "article", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "article", uuid.Nil)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "article", uuid.Nil)
	}
	return out, total, nil
}

// ListRelated returns up to limit published articles sharing the category
// or at least one tag with the reference article, newest first.
func (r *Repo) ListRelated(ctx context.Context, excludeID uuid.UUID, category *string, tags []string, limit int) ([]domain.Article, error) {
	match := squirrel.Or{}
	if category != nil {
		match = append(match, squirrel.Eq{"category_slug": *category})
	}
	if len(tags) > 0 {
		match = append(match, squirrel.Expr("tags && ?", tags))
	}
	if len(match) == 0 {
		return []domain.Article{}, nil
	}

	sel := psql.Select(articleColumns).
		From("articles").
		Where(squirrel.Eq{"status": domain.ArticlePublished}).
		Where(squirrel.Expr("published_at <= now()")).
		Where(squirrel.NotEq{"id": excludeID}).
		Where(match).
		OrderBy("published_at DESC", "id ASC").
		Limit(uint64(limit))

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build related query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "article", excludeID)
	}
	defer rows.Close()

	out := make([]domain.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, postgres.MapError(err, "article", excludeID)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "article", excludeID)
	}
	return out, nil
}

func (r *Repo) count(ctx context.Context, where squirrel.And) (int, error) {
	sel := psql.Select("COUNT(*)").From("articles")
	if len(where) > 0 {
		sel = sel.Where(where)
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "article", uuid.Nil)
	}
	return total, nil
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID, &a.Slug, &a.OwnerID, &a.Title, &a.Content, &a.Summary, &a.FeaturedImage,
		&a.MetaTitle, &a.MetaDescription, &a.CategorySlug, &a.CategoryName, &a.Tags,
		&a.Status, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return &a, nil
}
