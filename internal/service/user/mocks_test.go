package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	UpdateRoleFunc    func(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	SetActiveFunc     func(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	ListFunc          func(ctx context.Context, limit, offset int) ([]*domain.User, error)
	CountFunc         func(ctx context.Context) (int, error)

	calls struct {
		UpdateRole []struct {
			ID   uuid.UUID
			Role domain.Role
		}
		SetActive []struct {
			ID     uuid.UUID
			Active bool
		}
		List int
	}
	mu sync.Mutex
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	if m.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	return m.UpdateProfileFunc(ctx, id, name)
}

func (m *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	if m.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	m.mu.Lock()
	m.calls.UpdateRole = append(m.calls.UpdateRole, struct {
		ID   uuid.UUID
		Role domain.Role
	}{ID: id, Role: role})
	m.mu.Unlock()
	return m.UpdateRoleFunc(ctx, id, role)
}

func (m *userRepoMock) UpdateRoleCalls() []struct {
	ID   uuid.UUID
	Role domain.Role
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateRole
}

func (m *userRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	if m.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	m.mu.Lock()
	m.calls.SetActive = append(m.calls.SetActive, struct {
		ID     uuid.UUID
		Active bool
	}{ID: id, Active: active})
	m.mu.Unlock()
	return m.SetActiveFunc(ctx, id, active)
}

func (m *userRepoMock) SetActiveCalls() []struct {
	ID     uuid.UUID
	Active bool
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetActive
}

func (m *userRepoMock) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if m.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	m.mu.Lock()
	m.calls.List++
	m.mu.Unlock()
	return m.ListFunc(ctx, limit, offset)
}

func (m *userRepoMock) Count(ctx context.Context) (int, error) {
	if m.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	return m.CountFunc(ctx)
}
