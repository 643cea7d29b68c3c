package guestbook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// Moderate applies a moderation decision to an entry. Only moderators
// may call it; the decision target must be a status the transition table
// permits from the entry's current status. Re-applying the current
// status is allowed and refreshes the moderation fields, which makes
// retried requests harmless.
func (s *Service) Moderate(ctx context.Context, input ModerateInput) (*domain.GuestbookEntry, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapModerateGuestbook) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	if !entry.Status.CanTransitionTo(input.Status) {
		return nil, domain.NewValidationError("status",
			fmt.Sprintf("cannot move entry from %s to %s", entry.Status, input.Status))
	}

	updated, err := s.entries.UpdateStatus(ctx, entry.ID, input.Status, trimOrNil(input.Notes), principal.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.log.InfoContext(ctx, "guestbook entry moderated",
		slog.String("entry_id", entry.ID.String()),
		slog.String("from", entry.Status.String()),
		slog.String("to", updated.Status.String()),
		slog.String("moderator_id", principal.ID.String()),
	)

	return updated, nil
}
