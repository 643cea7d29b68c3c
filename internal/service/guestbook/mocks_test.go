package guestbook

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc       func(ctx context.Context, e *domain.GuestbookEntry) (*domain.GuestbookEntry, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.GuestbookEntry, error)
	ListByStatusFunc func(ctx context.Context, status domain.EntryStatus, limit, offset int) ([]*domain.GuestbookEntry, int, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.EntryStatus, notes *string, moderatedBy uuid.UUID, moderatedAt time.Time) (*domain.GuestbookEntry, error)
	ApplyPatchFunc   func(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.GuestbookEntry, error)

	calls struct {
		Create       []*domain.GuestbookEntry
		GetByID      []uuid.UUID
		ListByStatus []domain.EntryStatus
		UpdateStatus []struct {
			ID          uuid.UUID
			Status      domain.EntryStatus
			Notes       *string
			ModeratedBy uuid.UUID
		}
		ApplyPatch []struct {
			ID    uuid.UUID
			Patch domain.EntryPatch
		}
	}
	mu sync.Mutex
}

func (m *entryRepoMock) Create(ctx context.Context, e *domain.GuestbookEntry) (*domain.GuestbookEntry, error) {
	if m.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, e)
	m.mu.Unlock()
	return m.CreateFunc(ctx, e)
}

func (m *entryRepoMock) CreateCalls() []*domain.GuestbookEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.GuestbookEntry, error) {
	if m.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *entryRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *entryRepoMock) ListByStatus(ctx context.Context, status domain.EntryStatus, limit, offset int) ([]*domain.GuestbookEntry, int, error) {
	if m.ListByStatusFunc == nil {
		panic("entryRepoMock.ListByStatusFunc: method is nil but entryRepo.ListByStatus was just called")
	}
	m.mu.Lock()
	m.calls.ListByStatus = append(m.calls.ListByStatus, status)
	m.mu.Unlock()
	return m.ListByStatusFunc(ctx, status, limit, offset)
}

func (m *entryRepoMock) ListByStatusCalls() []domain.EntryStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ListByStatus
}

func (m *entryRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EntryStatus, notes *string, moderatedBy uuid.UUID, moderatedAt time.Time) (*domain.GuestbookEntry, error) {
	if m.UpdateStatusFunc == nil {
		panic("entryRepoMock.UpdateStatusFunc: method is nil but entryRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID          uuid.UUID
		Status      domain.EntryStatus
		Notes       *string
		ModeratedBy uuid.UUID
	}{ID: id, Status: status, Notes: notes, ModeratedBy: moderatedBy}
	m.mu.Lock()
	m.calls.UpdateStatus = append(m.calls.UpdateStatus, callInfo)
	m.mu.Unlock()
	return m.UpdateStatusFunc(ctx, id, status, notes, moderatedBy, moderatedAt)
}

func (m *entryRepoMock) UpdateStatusCalls() []struct {
	ID          uuid.UUID
	Status      domain.EntryStatus
	Notes       *string
	ModeratedBy uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateStatus
}

func (m *entryRepoMock) ApplyPatch(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.GuestbookEntry, error) {
	if m.ApplyPatchFunc == nil {
		panic("entryRepoMock.ApplyPatchFunc: method is nil but entryRepo.ApplyPatch was just called")
	}
	callInfo := struct {
		ID    uuid.UUID
		Patch domain.EntryPatch
	}{ID: id, Patch: patch}
	m.mu.Lock()
	m.calls.ApplyPatch = append(m.calls.ApplyPatch, callInfo)
	m.mu.Unlock()
	return m.ApplyPatchFunc(ctx, id, patch)
}

func (m *entryRepoMock) ApplyPatchCalls() []struct {
	ID    uuid.UUID
	Patch domain.EntryPatch
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ApplyPatch
}

var _ authorizer = &authorizerMock{}

type authorizerMock struct {
	AllowedFunc func(p *domain.Principal, c authz.Capability) bool
}

func (m *authorizerMock) Allowed(p *domain.Principal, c authz.Capability) bool {
	if m.AllowedFunc == nil {
		panic("authorizerMock.AllowedFunc: method is nil but authorizer.Allowed was just called")
	}
	return m.AllowedFunc(p, c)
}
