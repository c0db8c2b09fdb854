package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

var (
	_ projectRepo = &projectRepoMock{}
	_ mediaStore  = &mediaStoreMock{}
)

type projectRepoMock struct {
	CreateFunc        func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetBySlugFunc     func(ctx context.Context, slug string) (*domain.Project, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, p domain.ProjectUpdateParams) (*domain.Project, error)
	ApplyChangeFunc   func(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Project, error)
	SetCoverImageFunc func(ctx context.Context, id uuid.UUID, url string) error
	SlugExistsFunc    func(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	ListFunc          func(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error)
	AddMediaFunc      func(ctx context.Context, m *domain.ProjectMedia) (*domain.ProjectMedia, error)
	ListMediaFunc     func(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMedia, error)
	AddFlagFunc       func(ctx context.Context, f *domain.ProjectFlag) (*domain.ProjectFlag, error)
	ListFlagsFunc     func(ctx context.Context, unresolvedOnly bool) ([]domain.ProjectFlag, error)
	ResolveFlagFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ApplyChange []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Change domain.Change
		}
		SetCoverImage []struct {
			Ctx context.Context
			ID  uuid.UUID
			URL string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ProjectFilter
		}
		AddFlag []struct {
			Ctx  context.Context
			Flag *domain.ProjectFlag
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.ProjectUpdateParams
		}
		SlugExists []struct {
			Ctx       context.Context
			Slug      string
			ExcludeID uuid.UUID
		}
	}
	lockApplyChange   sync.RWMutex
	lockSetCoverImage sync.RWMutex
	lockList          sync.RWMutex
	lockAddFlag       sync.RWMutex
	lockUpdate        sync.RWMutex
	lockSlugExists    sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *projectRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	if mock.GetBySlugFunc == nil {
		panic("projectRepoMock.GetBySlugFunc: method is nil but projectRepo.GetBySlug was just called")
	}
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *projectRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.ProjectUpdateParams) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.ProjectUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.ProjectUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *projectRepoMock) ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.Project, error) {
	if mock.ApplyChangeFunc == nil {
		panic("projectRepoMock.ApplyChangeFunc: method is nil but projectRepo.ApplyChange was just called")
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

func (mock *projectRepoMock) ApplyChangeCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Change domain.Change
} {
	mock.lockApplyChange.RLock()
	calls := mock.calls.ApplyChange
	mock.lockApplyChange.RUnlock()
	return calls
}

func (mock *projectRepoMock) SetCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	if mock.SetCoverImageFunc == nil {
		panic("projectRepoMock.SetCoverImageFunc: method is nil but projectRepo.SetCoverImage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		URL string
	}{Ctx: ctx, ID: id, URL: url}
	mock.lockSetCoverImage.Lock()
	mock.calls.SetCoverImage = append(mock.calls.SetCoverImage, callInfo)
	mock.lockSetCoverImage.Unlock()
	return mock.SetCoverImageFunc(ctx, id, url)
}

func (mock *projectRepoMock) SetCoverImageCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	URL string
} {
	mock.lockSetCoverImage.RLock()
	calls := mock.calls.SetCoverImage
	mock.lockSetCoverImage.RUnlock()
	return calls
}

func (mock *projectRepoMock) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	if mock.SlugExistsFunc == nil {
		panic("projectRepoMock.SlugExistsFunc: method is nil but projectRepo.SlugExists was just called")
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

func (mock *projectRepoMock) SlugExistsCalls() []struct {
	Ctx       context.Context
	Slug      string
	ExcludeID uuid.UUID
} {
	mock.lockSlugExists.RLock()
	calls := mock.calls.SlugExists
	mock.lockSlugExists.RUnlock()
	return calls
}

func (mock *projectRepoMock) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ProjectFilter
	}{Ctx: ctx, Filter: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *projectRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ProjectFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *projectRepoMock) AddMedia(ctx context.Context, m *domain.ProjectMedia) (*domain.ProjectMedia, error) {
	if mock.AddMediaFunc == nil {
		panic("projectRepoMock.AddMediaFunc: method is nil but projectRepo.AddMedia was just called")
	}
	return mock.AddMediaFunc(ctx, m)
}

func (mock *projectRepoMock) ListMedia(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMedia, error) {
	if mock.ListMediaFunc == nil {
		panic("projectRepoMock.ListMediaFunc: method is nil but projectRepo.ListMedia was just called")
	}
	return mock.ListMediaFunc(ctx, projectID)
}

func (mock *projectRepoMock) AddFlag(ctx context.Context, f *domain.ProjectFlag) (*domain.ProjectFlag, error) {
	if mock.AddFlagFunc == nil {
		panic("projectRepoMock.AddFlagFunc: method is nil but projectRepo.AddFlag was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Flag *domain.ProjectFlag
	}{Ctx: ctx, Flag: f}
	mock.lockAddFlag.Lock()
	mock.calls.AddFlag = append(mock.calls.AddFlag, callInfo)
	mock.lockAddFlag.Unlock()
	return mock.AddFlagFunc(ctx, f)
}

func (mock *projectRepoMock) AddFlagCalls() []struct {
	Ctx  context.Context
	Flag *domain.ProjectFlag
} {
	mock.lockAddFlag.RLock()
	calls := mock.calls.AddFlag
	mock.lockAddFlag.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListFlags(ctx context.Context, unresolvedOnly bool) ([]domain.ProjectFlag, error) {
	if mock.ListFlagsFunc == nil {
		panic("projectRepoMock.ListFlagsFunc: method is nil but projectRepo.ListFlags was just called")
	}
	return mock.ListFlagsFunc(ctx, unresolvedOnly)
}

func (mock *projectRepoMock) ResolveFlag(ctx context.Context, id uuid.UUID) error {
	if mock.ResolveFlagFunc == nil {
		panic("projectRepoMock.ResolveFlagFunc: method is nil but projectRepo.ResolveFlag was just called")
	}
	return mock.ResolveFlagFunc(ctx, id)
}

type mediaStoreMock struct {
	StoreFunc func(ctx context.Context, name string, contentType string, data []byte) (string, error)

	calls struct {
		Store []struct {
			Ctx         context.Context
			Name        string
			ContentType string
			Data        []byte
		}
	}
	lockStore sync.RWMutex
}

func (mock *mediaStoreMock) Store(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	if mock.StoreFunc == nil {
		panic("mediaStoreMock.StoreFunc: method is nil but mediaStore.Store was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		ContentType string
		Data        []byte
	}{Ctx: ctx, Name: name, ContentType: contentType, Data: data}
	mock.lockStore.Lock()
	mock.calls.Store = append(mock.calls.Store, callInfo)
	mock.lockStore.Unlock()
	return mock.StoreFunc(ctx, name, contentType, data)
}

func (mock *mediaStoreMock) StoreCalls() []struct {
	Ctx         context.Context
	Name        string
	ContentType string
	Data        []byte
} {
	mock.lockStore.RLock()
	calls := mock.calls.Store
	mock.lockStore.RUnlock()
	return calls
}
