package guestbook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// Edit applies a partial content edit to an entry. Only moderators may
// call it. Editing never moves an entry through the moderation state
// machine: fixing a typo in an approved entry leaves it approved.
func (s *Service) Edit(ctx context.Context, input EditInput) (*domain.GuestbookEntry, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapModerateGuestbook) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.limits.MaxMessageLen); err != nil {
		return nil, err
	}

	patch := input.Patch
	patch.Message = trimOrNil(patch.Message)

	updated, err := s.entries.ApplyPatch(ctx, input.EntryID, patch)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}

	s.log.InfoContext(ctx, "guestbook entry edited",
		slog.String("entry_id", updated.ID.String()),
		slog.String("editor_id", principal.ID.String()),
	)

	return updated, nil
}
