package business

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// List returns a page of businesses, newest first. Unverified listings
// are only visible to admins who explicitly ask for them.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Business, error) {
	verifiedOnly := true
	if input.IncludeUnverified {
		principal, _ := ctxutil.PrincipalFromCtx(ctx)
		if s.authz.Allowed(principal, authz.CapVerifyBusiness) {
			verifiedOnly = false
		}
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	businesses, err := s.businesses.List(ctx, verifiedOnly, input.CategoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	return businesses, nil
}

// Get returns a single business. Unverified listings are visible only
// to their owner and to admins.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("business_id", "required")
	}

	b, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}

	if !b.Verified {
		principal, _ := ctxutil.PrincipalFromCtx(ctx)
		if !s.authz.CanEditBusiness(principal, b.OwnerID) {
			return nil, domain.ErrNotFound
		}
	}
	return b, nil
}
