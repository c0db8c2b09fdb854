package internship

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

var _ internshipRepo = &internshipRepoMock{}

type internshipRepoMock struct {
	CreateFunc        func(ctx context.Context, a *domain.InternshipApplication) (*domain.InternshipApplication, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.InternshipApplication, error)
	GetByOwnerFunc    func(ctx context.Context, ownerID uuid.UUID) (*domain.InternshipApplication, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, p domain.InternshipUpdateParams) (*domain.InternshipApplication, error)
	ApplyChangeFunc   func(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.InternshipApplication, error)
	SetScoreFunc      func(ctx context.Context, id uuid.UUID, score int) error
	BulkSetStatusFunc func(ctx context.Context, ids []uuid.UUID, status domain.Status) (int, error)
	ListFunc          func(ctx context.Context, f domain.InternshipFilter) ([]domain.InternshipApplication, int, error)
	ListForExportFunc func(ctx context.Context, f domain.InternshipFilter, maxRows int) ([]domain.InternshipApplication, error)

	calls struct {
		ApplyChange []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Change domain.Change
		}
		SetScore []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Score int
		}
		BulkSetStatus []struct {
			Ctx    context.Context
			IDs    []uuid.UUID
			Status domain.Status
		}
		ListForExport []struct {
			Ctx     context.Context
			Filter  domain.InternshipFilter
			MaxRows int
		}
	}
	lockApplyChange   sync.RWMutex
	lockSetScore      sync.RWMutex
	lockBulkSetStatus sync.RWMutex
	lockListForExport sync.RWMutex
}

func (mock *internshipRepoMock) Create(ctx context.Context, a *domain.InternshipApplication) (*domain.InternshipApplication, error) {
	if mock.CreateFunc == nil {
		panic("internshipRepoMock.CreateFunc: method is nil but internshipRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, a)
}

func (mock *internshipRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InternshipApplication, error) {
	if mock.GetByIDFunc == nil {
		panic("internshipRepoMock.GetByIDFunc: method is nil but internshipRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *internshipRepoMock) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.InternshipApplication, error) {
	if mock.GetByOwnerFunc == nil {
		panic("internshipRepoMock.GetByOwnerFunc: method is nil but internshipRepo.GetByOwner was just called")
	}
	return mock.GetByOwnerFunc(ctx, ownerID)
}

func (mock *internshipRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.InternshipUpdateParams) (*domain.InternshipApplication, error) {
	if mock.UpdateFunc == nil {
		panic("internshipRepoMock.UpdateFunc: method is nil but internshipRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *internshipRepoMock) ApplyChange(ctx context.Context, id uuid.UUID, c domain.Change) (*domain.InternshipApplication, error) {
	if mock.ApplyChangeFunc == nil {
		panic("internshipRepoMock.ApplyChangeFunc: method is nil but internshipRepo.ApplyChange was just called")
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

func (mock *internshipRepoMock) ApplyChangeCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Change domain.Change
} {
	mock.lockApplyChange.RLock()
	calls := mock.calls.ApplyChange
	mock.lockApplyChange.RUnlock()
	return calls
}

func (mock *internshipRepoMock) SetScore(ctx context.Context, id uuid.UUID, score int) error {
	if mock.SetScoreFunc == nil {
		panic("internshipRepoMock.SetScoreFunc: method is nil but internshipRepo.SetScore was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Score int
	}{Ctx: ctx, ID: id, Score: score}
	mock.lockSetScore.Lock()
	mock.calls.SetScore = append(mock.calls.SetScore, callInfo)
	mock.lockSetScore.Unlock()
	return mock.SetScoreFunc(ctx, id, score)
}

func (mock *internshipRepoMock) SetScoreCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Score int
} {
	mock.lockSetScore.RLock()
	calls := mock.calls.SetScore
	mock.lockSetScore.RUnlock()
	return calls
}

func (mock *internshipRepoMock) BulkSetStatus(ctx context.Context, ids []uuid.UUID, status domain.Status) (int, error) {
	if mock.BulkSetStatusFunc == nil {
		panic("internshipRepoMock.BulkSetStatusFunc: method is nil but internshipRepo.BulkSetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IDs    []uuid.UUID
		Status domain.Status
	}{Ctx: ctx, IDs: ids, Status: status}
	mock.lockBulkSetStatus.Lock()
	mock.calls.BulkSetStatus = append(mock.calls.BulkSetStatus, callInfo)
	mock.lockBulkSetStatus.Unlock()
	return mock.BulkSetStatusFunc(ctx, ids, status)
}

func (mock *internshipRepoMock) BulkSetStatusCalls() []struct {
	Ctx    context.Context
	IDs    []uuid.UUID
	Status domain.Status
} {
	mock.lockBulkSetStatus.RLock()
	calls := mock.calls.BulkSetStatus
	mock.lockBulkSetStatus.RUnlock()
	return calls
}

func (mock *internshipRepoMock) List(ctx context.Context, f domain.InternshipFilter) ([]domain.InternshipApplication, int, error) {
	if mock.ListFunc == nil {
		panic("internshipRepoMock.ListFunc: method is nil but internshipRepo.List was just called")
	}
	return mock.ListFunc(ctx, f)
}

func (mock *internshipRepoMock) ListForExport(ctx context.Context, f domain.InternshipFilter, maxRows int) ([]domain.InternshipApplication, error) {
	if mock.ListForExportFunc == nil {
		panic("internshipRepoMock.ListForExportFunc: method is nil but internshipRepo.ListForExport was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Filter  domain.InternshipFilter
		MaxRows int
	}{Ctx: ctx, Filter: f, MaxRows: maxRows}
	mock.lockListForExport.Lock()
	mock.calls.ListForExport = append(mock.calls.ListForExport, callInfo)
	mock.lockListForExport.Unlock()
	return mock.ListForExportFunc(ctx, f, maxRows)
}

func (mock *internshipRepoMock) ListForExportCalls() []struct {
	Ctx     context.Context
	Filter  domain.InternshipFilter
	MaxRows int
} {
	mock.lockListForExport.RLock()
	calls := mock.calls.ListForExport
	mock.lockListForExport.RUnlock()
	return calls
}
