package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/launchhub/launchpad-backend/internal/adapter/postgres/article"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

var articleCols = []string{
	"id", "slug", "owner_id", "title", "content", "summary", "featured_image",
	"meta_title", "meta_description", "category_slug", "category_name", "tags",
	"status", "published_at", "created_at", "updated_at",
}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *article.Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, article.New(mock)
}

func articleRow(id, ownerID uuid.UUID, status domain.Status, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(articleCols).AddRow(
		id, "go-in-production", ownerID, "Go in Production", "body", nil, nil,
		nil, nil, nil, nil, []string{"go", "infra"},
		status, nil, now, now,
	)
}

func TestRepo_GetByID(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(`SELECT .+ FROM articles WHERE id =`).
			WithArgs(id).
			WillReturnRows(articleRow(id, ownerID, domain.ArticleDraft, now))

		got, err := repo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if got.ID != id {
			t.Errorf("GetByID() id = %v, want %v", got.ID, id)
		}
		if got.Slug != "go-in-production" {
			t.Errorf("GetByID() slug = %q", got.Slug)
		}
		if len(got.Tags) != 2 {
			t.Errorf("GetByID() tags = %v, want 2 entries", got.Tags)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(`SELECT .+ FROM articles WHERE id =`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByID() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepo_GetBySlug(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()

	mock, repo := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM articles WHERE slug =`).
		WithArgs("go-in-production").
		WillReturnRows(articleRow(id, ownerID, domain.ArticlePublished, time.Now()))

	got, err := repo.GetBySlug(context.Background(), "go-in-production")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Status != domain.ArticlePublished {
		t.Errorf("GetBySlug() status = %v", got.Status)
	}
}

func TestRepo_SlugExists(t *testing.T) {
	mock, repo := newMock(t)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("go-in-production", uuid.Nil).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SlugExists(context.Background(), "go-in-production", uuid.Nil)
	if err != nil {
		t.Fatalf("SlugExists() error = %v", err)
	}
	if !exists {
		t.Error("SlugExists() = false, want true")
	}
}

func TestRepo_ApplyChange(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()
	publishedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	mock, repo := newMock(t)
	mock.ExpectQuery(`UPDATE articles SET`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(articleRow(id, ownerID, domain.ArticlePublished, time.Now()))

	got, err := repo.ApplyChange(context.Background(), id, domain.Change{
		Status:      domain.ArticlePublished,
		PublishedAt: &publishedAt,
	})
	if err != nil {
		t.Fatalf("ApplyChange() error = %v", err)
	}
	if got.Status != domain.ArticlePublished {
		t.Errorf("ApplyChange() status = %v, want PUBLISHED", got.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepo_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectExec(`DELETE FROM articles`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		if err := repo.Delete(context.Background(), id); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectExec(`DELETE FROM articles`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(context.Background(), id)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepo_List(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()
	status := domain.ArticlePublished

	mock, repo := newMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles`).
		WithArgs(status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT .+ FROM articles .*ORDER BY published_at DESC NULLS LAST, id ASC`).
		WithArgs(status).
		WillReturnRows(articleRow(id, ownerID, status, time.Now()))

	got, total, err := repo.List(context.Background(), domain.ArticleFilter{
		Status: &status,
		Page:   domain.PageRequest{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 12 {
		t.Errorf("List() total = %d, want 12", total)
	}
	if len(got) != 1 {
		t.Fatalf("List() len = %d, want 1", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepo_List_PublicOnly(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()
	status := domain.ArticlePublished

	mock, repo := newMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles WHERE \(.*published_at <= now\(\)`).
		WithArgs(status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM articles WHERE \(.*published_at <= now\(\)`).
		WithArgs(status).
		WillReturnRows(articleRow(id, ownerID, status, time.Now()))

	_, _, err := repo.List(context.Background(), domain.ArticleFilter{
		Status:     &status,
		PublicOnly: true,
		Page:       domain.PageRequest{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepo_ListRelated_HidesScheduledDates(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()
	category := "engineering"

	mock, repo := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM articles WHERE .*published_at <= now\(\).* ORDER BY published_at DESC, id ASC`).
		WithArgs(domain.ArticlePublished, uuid.Nil, category).
		WillReturnRows(articleRow(id, ownerID, domain.ArticlePublished, time.Now()))

	got, err := repo.ListRelated(context.Background(), uuid.Nil, &category, nil, 3)
	if err != nil {
		t.Fatalf("ListRelated() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListRelated() len = %d, want 1", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepo_ListRelated_NoCriteria(t *testing.T) {
	_, repo := newMock(t)

	got, err := repo.ListRelated(context.Background(), uuid.New(), nil, nil, 3)
	if err != nil {
		t.Fatalf("ListRelated() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListRelated() len = %d, want 0", len(got))
	}
}
