package startup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/launchhub/launchpad-backend/internal/adapter/postgres/startup"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

var startupCols = []string{
	"id", "slug", "owner_id", "name", "pitch", "industry", "stage", "country",
	"tags", "featured", "status", "submitted_at", "mod_notes", "created_at", "updated_at",
}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *startup.Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, startup.New(mock)
}

func startupRow(id, ownerID uuid.UUID, status domain.Status, featured bool, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(startupCols).AddRow(
		id, "lumen-labs", ownerID, "Lumen Labs", nil, nil, nil, nil,
		[]string{"fintech"}, featured, status, nil, nil, now, now,
	)
}

func TestRepo_GetBySlug(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(`SELECT .+ FROM startups WHERE slug =`).
			WithArgs("lumen-labs").
			WillReturnRows(startupRow(id, ownerID, domain.StartupApproved, false, time.Now()))

		got, err := repo.GetBySlug(context.Background(), "lumen-labs")
		if err != nil {
			t.Fatalf("GetBySlug() error = %v", err)
		}
		if got.Name != "Lumen Labs" {
			t.Errorf("GetBySlug() name = %q", got.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(`SELECT .+ FROM startups WHERE slug =`).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetBySlug(context.Background(), "ghost")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetBySlug() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepo_ApplyChange_Decision(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()
	notes := "strong pitch"

	mock, repo := newMock(t)
	mock.ExpectQuery(`UPDATE startups SET`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(startupRow(id, ownerID, domain.StartupApproved, false, time.Now()))

	got, err := repo.ApplyChange(context.Background(), id, domain.Change{
		Status:   domain.StartupApproved,
		ModNotes: &notes,
	})
	if err != nil {
		t.Fatalf("ApplyChange() error = %v", err)
	}
	if got.Status != domain.StartupApproved {
		t.Errorf("ApplyChange() status = %v", got.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepo_SetFeatured(t *testing.T) {
	id := uuid.New()

	mock, repo := newMock(t)
	mock.ExpectExec(`UPDATE startups`).
		WithArgs(true, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.SetFeatured(context.Background(), id, true); err != nil {
		t.Fatalf("SetFeatured() error = %v", err)
	}
}

func TestRepo_List_FeaturedFirst(t *testing.T) {
	ownerID := uuid.New()
	stage := "seed"

	mock, repo := newMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM startups`).
		WithArgs(stage).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	rows := startupRow(uuid.New(), ownerID, domain.StartupApproved, true, time.Now()).
		AddRow(uuid.New(), "second", ownerID, "Second", nil, nil, nil, nil,
			[]string{}, false, domain.StartupApproved, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(`SELECT .+ FROM startups .+ ORDER BY featured DESC`).
		WithArgs(stage).
		WillReturnRows(rows)

	got, total, err := repo.List(context.Background(), domain.StartupFilter{
		Stage: &stage,
		Page:  domain.PageRequest{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("List() = %d rows, total %d", len(got), total)
	}
	if !got[0].Featured {
		t.Error("List() first row should be featured")
	}
}
