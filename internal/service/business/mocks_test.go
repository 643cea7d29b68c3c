package business

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
)

var _ businessRepo = &businessRepoMock{}

type businessRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	ListFunc        func(ctx context.Context, verifiedOnly bool, categoryID *uuid.UUID, limit, offset int) ([]*domain.Business, error)
	CreateFunc      func(ctx context.Context, b *domain.Business) (*domain.Business, error)
	UpdateFunc      func(ctx context.Context, b *domain.Business) (*domain.Business, error)
	SetVerifiedFunc func(ctx context.Context, id uuid.UUID, verified bool) (*domain.Business, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	LikeFunc        func(ctx context.Context, businessID, userID uuid.UUID) error
	UnlikeFunc      func(ctx context.Context, businessID, userID uuid.UUID) error

	calls struct {
		List []struct {
			VerifiedOnly bool
			CategoryID   *uuid.UUID
		}
		Create []*domain.Business
		Update []*domain.Business
		Delete []uuid.UUID
		Like   []struct {
			BusinessID uuid.UUID
			UserID     uuid.UUID
		}
	}
	mu sync.Mutex
}

func (m *businessRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	if m.GetByIDFunc == nil {
		panic("businessRepoMock.GetByIDFunc: method is nil but businessRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *businessRepoMock) List(ctx context.Context, verifiedOnly bool, categoryID *uuid.UUID, limit, offset int) ([]*domain.Business, error) {
	if m.ListFunc == nil {
		panic("businessRepoMock.ListFunc: method is nil but businessRepo.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, struct {
		VerifiedOnly bool
		CategoryID   *uuid.UUID
	}{VerifiedOnly: verifiedOnly, CategoryID: categoryID})
	m.mu.Unlock()
	return m.ListFunc(ctx, verifiedOnly, categoryID, limit, offset)
}

func (m *businessRepoMock) ListCalls() []struct {
	VerifiedOnly bool
	CategoryID   *uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *businessRepoMock) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	if m.CreateFunc == nil {
		panic("businessRepoMock.CreateFunc: method is nil but businessRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, b)
	m.mu.Unlock()
	return m.CreateFunc(ctx, b)
}

func (m *businessRepoMock) CreateCalls() []*domain.Business {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *businessRepoMock) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	if m.UpdateFunc == nil {
		panic("businessRepoMock.UpdateFunc: method is nil but businessRepo.Update was just called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, b)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, b)
}

func (m *businessRepoMock) UpdateCalls() []*domain.Business {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *businessRepoMock) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Business, error) {
	if m.SetVerifiedFunc == nil {
		panic("businessRepoMock.SetVerifiedFunc: method is nil but businessRepo.SetVerified was just called")
	}
	return m.SetVerifiedFunc(ctx, id, verified)
}

func (m *businessRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("businessRepoMock.DeleteFunc: method is nil but businessRepo.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *businessRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *businessRepoMock) Like(ctx context.Context, businessID, userID uuid.UUID) error {
	if m.LikeFunc == nil {
		panic("businessRepoMock.LikeFunc: method is nil but businessRepo.Like was just called")
	}
	m.mu.Lock()
	m.calls.Like = append(m.calls.Like, struct {
		BusinessID uuid.UUID
		UserID     uuid.UUID
	}{BusinessID: businessID, UserID: userID})
	m.mu.Unlock()
	return m.LikeFunc(ctx, businessID, userID)
}

func (m *businessRepoMock) LikeCalls() []struct {
	BusinessID uuid.UUID
	UserID     uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Like
}

func (m *businessRepoMock) Unlike(ctx context.Context, businessID, userID uuid.UUID) error {
	if m.UnlikeFunc == nil {
		panic("businessRepoMock.UnlikeFunc: method is nil but businessRepo.Unlike was just called")
	}
	return m.UnlikeFunc(ctx, businessID, userID)
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func existingCategory() *categoryRepoMock {
	return &categoryRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Homestay", Slug: "homestay"}, nil
		},
	}
}
