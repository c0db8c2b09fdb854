package startup

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

var _ startupRepo = &startupRepoMock{}

type startupRepoMock struct {
	CreateFunc      func(ctx context.Context, s *domain.Startup) (*domain.Startup, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Startup, error)
	GetBySlugFunc   func(ctx context.Context, slug string) (*domain.Startup, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, p domain.StartupUpdateParams) (*domain.Startup, error)
	ApplyChangeFunc func(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Startup, error)
	SetFeaturedFunc func(ctx context.Context, id uuid.UUID, featured bool) error
	SlugExistsFunc  func(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	ListFunc        func(ctx context.Context, f domain.StartupFilter) ([]domain.Startup, int, error)

	calls struct {
		ApplyChange []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Change domain.Change
		}
		SetFeatured []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Featured bool
		}
		List []struct {
			Ctx    context.Context
			Filter domain.StartupFilter
		}
	}
	lockApplyChange sync.RWMutex
	lockSetFeatured sync.RWMutex
	lockList        sync.RWMutex
}

func (mock *startupRepoMock) Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error) {
	if mock.CreateFunc == nil {
		panic("startupRepoMock.CreateFunc: method is nil but startupRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, s)
}

func (mock *startupRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Startup, error) {
	if mock.GetByIDFunc == nil {
		panic("startupRepoMock.GetByIDFunc: method is nil but startupRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *startupRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Startup, error) {
	if mock.GetBySlugFunc == nil {
		panic("startupRepoMock.GetBySlugFunc: method is nil but startupRepo.GetBySlug was just called")
	}
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *startupRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.StartupUpdateParams) (*domain.Startup, error) {
	if mock.UpdateFunc == nil {
		panic("startupRepoMock.UpdateFunc: method is nil but startupRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *startupRepoMock) ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Startup, error) {
	if mock.ApplyChangeFunc == nil {
		panic("startupRepoMock.ApplyChangeFunc: method is nil but startupRepo.ApplyChange was just called")
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

func (mock *startupRepoMock) ApplyChangeCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Change domain.Change
} {
	mock.lockApplyChange.RLock()
	calls := mock.calls.ApplyChange
	mock.lockApplyChange.RUnlock()
	return calls
}

func (mock *startupRepoMock) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	if mock.SetFeaturedFunc == nil {
		panic("startupRepoMock.SetFeaturedFunc: method is nil but startupRepo.SetFeatured was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Featured bool
	}{Ctx: ctx, ID: id, Featured: featured}
	mock.lockSetFeatured.Lock()
	mock.calls.SetFeatured = append(mock.calls.SetFeatured, callInfo)
	mock.lockSetFeatured.Unlock()
	return mock.SetFeaturedFunc(ctx, id, featured)
}

func (mock *startupRepoMock) SetFeaturedCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Featured bool
} {
	mock.lockSetFeatured.RLock()
	calls := mock.calls.SetFeatured
	mock.lockSetFeatured.RUnlock()
	return calls
}

func (mock *startupRepoMock) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	if mock.SlugExistsFunc == nil {
		panic("startupRepoMock.SlugExistsFunc: method is nil but startupRepo.SlugExists was just called")
	}
	return mock.SlugExistsFunc(ctx, slug, excludeID)
}

func (mock *startupRepoMock) List(ctx context.Context, f domain.StartupFilter) ([]domain.Startup, int, error) {
	if mock.ListFunc == nil {
		panic("startupRepoMock.ListFunc: method is nil but startupRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.StartupFilter
	}{Ctx: ctx, Filter: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *startupRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.StartupFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
