package business

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// Like records the caller's like on a business. Liking twice is a
// no-op, so clients may retry freely.
func (s *Service) Like(ctx context.Context, businessID uuid.UUID) error {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapLikeBusiness) {
		return domain.ErrForbidden
	}
	if businessID == uuid.Nil {
		return domain.NewValidationError("business_id", "required")
	}

	if _, err := s.businesses.GetByID(ctx, businessID); err != nil {
		return fmt.Errorf("get business: %w", err)
	}

	if err := s.businesses.Like(ctx, businessID, principal.ID); err != nil {
		return fmt.Errorf("like business: %w", err)
	}
	return nil
}

// Unlike removes the caller's like if present.
func (s *Service) Unlike(ctx context.Context, businessID uuid.UUID) error {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapLikeBusiness) {
		return domain.ErrForbidden
	}
	if businessID == uuid.Nil {
		return domain.NewValidationError("business_id", "required")
	}

	if err := s.businesses.Unlike(ctx, businessID, principal.ID); err != nil {
		return fmt.Errorf("unlike business: %w", err)
	}
	return nil
}
