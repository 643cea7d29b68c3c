// Package business implements the business directory operations:
// listings, ownership-aware editing, verification and likes.
package business

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
)

type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	List(ctx context.Context, verifiedOnly bool, categoryID *uuid.UUID, limit, offset int) ([]*domain.Business, error)
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	Update(ctx context.Context, b *domain.Business) (*domain.Business, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Business, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, businessID, userID uuid.UUID) error
	Unlike(ctx context.Context, businessID, userID uuid.UUID) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

type authorizer interface {
	Allowed(p *domain.Principal, c authz.Capability) bool
	CanEditBusiness(p *domain.Principal, ownerID uuid.UUID) bool
}

const defaultPageSize = 20

// Service provides business directory operations.
type Service struct {
	businesses businessRepo
	categories categoryRepo
	authz      authorizer
	log        *slog.Logger
}

// NewService creates a new business service.
func NewService(log *slog.Logger, businesses businessRepo, categories categoryRepo, auth authorizer) *Service {
	return &Service{
		businesses: businesses,
		categories: categories,
		authz:      auth,
		log:        log.With("service", "business"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
