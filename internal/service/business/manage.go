package business

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// Create registers a new listing owned by the caller. Listings start
// unverified and stay off the public directory until an admin verifies
// them.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Business, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapCreateBusiness) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("category_id", "unknown category")
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	b := &domain.Business{
		ID:          uuid.New(),
		OwnerID:     principal.ID,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Address:     trimOrNil(input.Address),
		Phone:       trimOrNil(input.Phone),
		Website:     trimOrNil(input.Website),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Verified:    false,
	}

	created, err := s.businesses.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}

	s.log.InfoContext(ctx, "business created",
		slog.String("business_id", created.ID.String()),
		slog.String("owner_id", principal.ID.String()),
	)
	return created, nil
}

// Update edits a listing. Admins may edit any listing, business owners
// only their own.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Business, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.businesses.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}

	if !s.authz.CanEditBusiness(principal, existing.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if input.CategoryID != existing.CategoryID {
		if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("category_id", "unknown category")
			}
			return nil, fmt.Errorf("get category: %w", err)
		}
	}

	existing.CategoryID = input.CategoryID
	existing.Name = strings.TrimSpace(input.Name)
	existing.Description = trimOrNil(input.Description)
	existing.Address = trimOrNil(input.Address)
	existing.Phone = trimOrNil(input.Phone)
	existing.Website = trimOrNil(input.Website)
	existing.Latitude = input.Latitude
	existing.Longitude = input.Longitude

	updated, err := s.businesses.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update business: %w", err)
	}

	s.log.InfoContext(ctx, "business updated",
		slog.String("business_id", updated.ID.String()),
		slog.String("editor_id", principal.ID.String()),
	)
	return updated, nil
}

// SetVerified flips a listing's verification flag. Admin only.
func (s *Service) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Business, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapVerifyBusiness) {
		return nil, domain.ErrForbidden
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("business_id", "required")
	}

	updated, err := s.businesses.SetVerified(ctx, id, verified)
	if err != nil {
		return nil, fmt.Errorf("set verified: %w", err)
	}

	s.log.InfoContext(ctx, "business verification changed",
		slog.String("business_id", id.String()),
		slog.Bool("verified", verified),
		slog.String("admin_id", principal.ID.String()),
	)
	return updated, nil
}

// Delete removes a listing. Admin only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapDeleteBusiness) {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("business_id", "required")
	}

	if err := s.businesses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete business: %w", err)
	}

	s.log.InfoContext(ctx, "business deleted",
		slog.String("business_id", id.String()),
		slog.String("admin_id", principal.ID.String()),
	)
	return nil
}
