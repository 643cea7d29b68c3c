package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// CategoryInput holds the parameters for creating or updating a
// category.
type CategoryInput struct {
	Name string
	// Slug overrides the automatic slug when set.
	Slug string
}

// Validate checks all fields and collects all errors.
func (i CategoryInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Slug == "" && slugify(name) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "cannot derive slug from name, set one explicitly"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CategoryInput) slug() string {
	if i.Slug != "" {
		return slugify(i.Slug)
	}
	return slugify(i.Name)
}

// ListAll returns every category ordered by name. Public.
func (s *Service) ListAll(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get returns a single category. Public.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "required")
	}
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Create adds a new category. Admin only; duplicate slugs surface as
// ErrAlreadyExists from the unique constraint.
func (s *Service) Create(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapCreateCategory) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		ID:   uuid.New(),
		Name: strings.TrimSpace(input.Name),
		Slug: input.slug(),
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)
	return created, nil
}

// Update renames a category. Admin only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*domain.Category, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapEditCategory) {
		return nil, domain.ErrForbidden
	}

	if id == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.categories.Update(ctx, id, strings.TrimSpace(input.Name), input.slug())
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("category_id", id.String()))
	return updated, nil
}

// Delete removes a category. Admin only. A category still referenced by
// businesses cannot be deleted; reassign them first.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapDeleteCategory) {
		return domain.ErrForbidden
	}

	if id == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}

	count, err := s.businesses.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count businesses: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("category has %d businesses: %w", count, domain.ErrConflict)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("category_id", id.String()))
	return nil
}
