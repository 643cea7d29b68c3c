// Package user implements profile and account administration operations.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	Count(ctx context.Context) (int, error)
}

type authorizer interface {
	Allowed(p *domain.Principal, c authz.Capability) bool
}

const defaultPageSize = 50

// Service provides user profile and administration operations.
type Service struct {
	users userRepo
	authz authorizer
	log   *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo, auth authorizer) *Service {
	return &Service{
		users: users,
		authz: auth,
		log:   log.With("service", "user"),
	}
}
