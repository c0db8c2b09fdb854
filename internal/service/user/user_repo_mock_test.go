package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, name, avatarURL *string) (*domain.User, error)
	SetRoleFunc       func(ctx context.Context, id uuid.UUID, role domain.Role) error

	calls struct {
		SetRole []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Role domain.Role
		}
	}
	lockSetRole sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, name, avatarURL *string) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	return mock.UpdateProfileFunc(ctx, id, name, avatarURL)
}

func (mock *userRepoMock) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	if mock.SetRoleFunc == nil {
		panic("userRepoMock.SetRoleFunc: method is nil but userRepo.SetRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role domain.Role
	}{Ctx: ctx, ID: id, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) SetRoleCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Role domain.Role
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}
