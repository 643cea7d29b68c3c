package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// UserPage is one page of the user management listing.
type UserPage struct {
	Users []*domain.User
	Total int
}

// ListUsers returns a page of users, newest first, for the admin panel.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) (*UserPage, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapViewUserList) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return &UserPage{Users: users, Total: total}, nil
}

// SetRoleInput holds the parameters for changing a user's role.
type SetRoleInput struct {
	UserID uuid.UUID
	Role   domain.Role
}

// Validate checks all fields and collects all errors.
func (i SetRoleInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role: " + i.Role.String()})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetUserRole changes another user's role. Admins cannot change their
// own role: demoting the last admin would lock everyone out of the
// panel, and self-promotion is meaningless.
func (s *Service) SetUserRole(ctx context.Context, input SetRoleInput) (*domain.User, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapChangeUserRole) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.UserID == principal.ID {
		return nil, domain.NewValidationError("user_id", "cannot change own role")
	}

	user, err := s.users.UpdateRole(ctx, input.UserID, input.Role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
		slog.String("changed_by", principal.ID.String()),
	)
	return user, nil
}

// SetActiveInput holds the parameters for activating or deactivating a
// user.
type SetActiveInput struct {
	UserID uuid.UUID
	Active bool
}

// Validate checks all fields and collects all errors.
func (i SetActiveInput) Validate() error {
	if i.UserID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	return nil
}

// SetUserActive activates or deactivates an account. Deactivating
// oneself is refused for the same lockout reason as self-demotion.
func (s *Service) SetUserActive(ctx context.Context, input SetActiveInput) (*domain.User, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapManageUsers) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.UserID == principal.ID && !input.Active {
		return nil, domain.NewValidationError("user_id", "cannot deactivate own account")
	}

	user, err := s.users.SetActive(ctx, input.UserID, input.Active)
	if err != nil {
		return nil, fmt.Errorf("set active: %w", err)
	}

	s.log.InfoContext(ctx, "user active flag changed",
		slog.String("user_id", user.ID.String()),
		slog.Bool("active", user.IsActive),
		slog.String("changed_by", principal.ID.String()),
	)
	return user, nil
}
