package article

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	CreateFunc      func(ctx context.Context, a *domain.Article) (*domain.Article, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetBySlugFunc   func(ctx context.Context, slug string) (*domain.Article, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, p domain.ArticleUpdateParams) (*domain.Article, error)
	ApplyChangeFunc func(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Article, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	SlugExistsFunc  func(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	ListFunc        func(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, int, error)
	ListRelatedFunc func(ctx context.Context, excludeID uuid.UUID, category *string, tags []string, limit int) ([]domain.Article, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Article *domain.Article
		}
		ApplyChange []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Change domain.Change
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ArticleFilter
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.ArticleUpdateParams
		}
		SlugExists []struct {
			Ctx       context.Context
			Slug      string
			ExcludeID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockApplyChange sync.RWMutex
	lockDelete      sync.RWMutex
	lockList        sync.RWMutex
	lockUpdate      sync.RWMutex
	lockSlugExists  sync.RWMutex
}

func (mock *articleRepoMock) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleRepoMock.CreateFunc: method is nil but articleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Article *domain.Article
	}{Ctx: ctx, Article: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *articleRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Article *domain.Article
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetByIDFunc == nil {
		panic("articleRepoMock.GetByIDFunc: method is nil but articleRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *articleRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if mock.GetBySlugFunc == nil {
		panic("articleRepoMock.GetBySlugFunc: method is nil but articleRepo.GetBySlug was just called")
	}
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *articleRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.ArticleUpdateParams) (*domain.Article, error) {
	if mock.UpdateFunc == nil {
		panic("articleRepoMock.UpdateFunc: method is nil but articleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.ArticleUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *articleRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.ArticleUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *articleRepoMock) ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Article, error) {
	if mock.ApplyChangeFunc == nil {
		panic("articleRepoMock.ApplyChangeFunc: method is nil but articleRepo.ApplyChange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Change domain.Change
	}{Ctx: ctx, ID: id, Change: c}
	mock.lockApplyChange.Lock()
	mock.calls.ApplyChange = append(mock.calls.ApplyChange, callInfo)
	mock.lockApplyChange.Unlock()
	return mock.ApplyChangeFunc(ctx, id, c)
}

func (mock *articleRepoMock) ApplyChangeCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Change domain.Change
} {
	mock.lockApplyChange.RLock()
	calls := mock.calls.ApplyChange
	mock.lockApplyChange.RUnlock()
	return calls
}

func (mock *articleRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("articleRepoMock.DeleteFunc: method is nil but articleRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *articleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *articleRepoMock) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	if mock.SlugExistsFunc == nil {
		panic("articleRepoMock.SlugExistsFunc: method is nil but articleRepo.SlugExists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Slug      string
		ExcludeID uuid.UUID
	}{Ctx: ctx, Slug: slug, ExcludeID: excludeID}
	mock.lockSlugExists.Lock()
	mock.calls.SlugExists = append(mock.calls.SlugExists, callInfo)
	mock.lockSlugExists.Unlock()
	return mock.SlugExistsFunc(ctx, slug, excludeID)
}

func (mock *articleRepoMock) SlugExistsCalls() []struct {
	Ctx       context.Context
	Slug      string
	ExcludeID uuid.UUID
} {
	mock.lockSlugExists.RLock()
	calls := mock.calls.SlugExists
	mock.lockSlugExists.RUnlock()
	return calls
}

func (mock *articleRepoMock) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, int, error) {
	if mock.ListFunc == nil {
		panic("articleRepoMock.ListFunc: method is nil but articleRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ArticleFilter
	}{Ctx: ctx, Filter: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *articleRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ArticleFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *articleRepoMock) ListRelated(ctx context.Context, excludeID uuid.UUID, category *string, tags []string, limit int) ([]domain.Article, error) {
	if mock.ListRelatedFunc == nil {
		panic("articleRepoMock.ListRelatedFunc: method is nil but articleRepo.ListRelated was just called")
	}
	return mock.ListRelatedFunc(ctx, excludeID, category, tags, limit)
}
