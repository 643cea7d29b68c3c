package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)

	calls struct {
		GetByID    []uuid.UUID
		GetByEmail []string
		Create     []*domain.User
	}
	mu sync.Mutex
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	m.mu.Lock()
	m.calls.GetByEmail = append(m.calls.GetByEmail, email)
	m.mu.Unlock()
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) GetByEmailCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByEmail
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, user)
	m.mu.Unlock()
	return m.CreateFunc(ctx, user)
}

func (m *userRepoMock) CreateCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc          func(ctx context.Context, token *domain.RefreshToken) error
	GetByHashFunc       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc      func(ctx context.Context, id uuid.UUID) error
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc   func(ctx context.Context) (int64, error)

	calls struct {
		Create          []*domain.RefreshToken
		GetByHash       []string
		RevokeByID      []uuid.UUID
		RevokeAllByUser []uuid.UUID
		DeleteExpired   int
	}
	mu sync.Mutex
}

func (m *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, token)
	m.mu.Unlock()
	return m.CreateFunc(ctx, token)
}

func (m *tokenRepoMock) CreateCalls() []*domain.RefreshToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if m.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	m.mu.Lock()
	m.calls.GetByHash = append(m.calls.GetByHash, tokenHash)
	m.mu.Unlock()
	return m.GetByHashFunc(ctx, tokenHash)
}

func (m *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if m.RevokeByIDFunc == nil {
		panic("tokenRepoMock.RevokeByIDFunc: method is nil but tokenRepo.RevokeByID was just called")
	}
	m.mu.Lock()
	m.calls.RevokeByID = append(m.calls.RevokeByID, id)
	m.mu.Unlock()
	return m.RevokeByIDFunc(ctx, id)
}

func (m *tokenRepoMock) RevokeByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RevokeByID
}

func (m *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	m.mu.Lock()
	m.calls.RevokeAllByUser = append(m.calls.RevokeAllByUser, userID)
	m.mu.Unlock()
	return m.RevokeAllByUserFunc(ctx, userID)
}

func (m *tokenRepoMock) RevokeAllByUserCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RevokeAllByUser
}

func (m *tokenRepoMock) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	m.mu.Lock()
	m.calls.DeleteExpired++
	m.mu.Unlock()
	return m.DeleteExpiredFunc(ctx)
}

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID, role string) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (m *tokenManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	return m.GenerateAccessTokenFunc(userID, role)
}

func (m *tokenManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("tokenManagerMock.ValidateAccessTokenFunc: method is nil but tokenManager.ValidateAccessToken was just called")
	}
	return m.ValidateAccessTokenFunc(token)
}

func (m *tokenManagerMock) GenerateRefreshToken() (string, string, error) {
	if m.GenerateRefreshTokenFunc == nil {
		panic("tokenManagerMock.GenerateRefreshTokenFunc: method is nil but tokenManager.GenerateRefreshToken was just called")
	}
	return m.GenerateRefreshTokenFunc()
}
