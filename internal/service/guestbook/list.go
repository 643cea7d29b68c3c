package guestbook

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/pkg/ctxutil"
)

// QueuePage is one page of the moderation queue.
type QueuePage struct {
	Entries []*domain.GuestbookEntry
	Total   int
}

// ListQueue returns a page of entries in the given status, newest first,
// for the moderation panel. Only moderators may call it.
func (s *Service) ListQueue(ctx context.Context, input ListQueueInput) (*QueuePage, error) {
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

	limit, offset := clampPage(input.Limit, input.Offset, s.limits.QueuePageSize)

	entries, total, err := s.entries.ListByStatus(ctx, input.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list by status: %w", err)
	}

	return &QueuePage{Entries: entries, Total: total}, nil
}

// ListApproved returns a page of approved entries, newest first. This is
// the only listing exposed to the public site.
func (s *Service) ListApproved(ctx context.Context, limit, offset int) (*QueuePage, error) {
	limit, offset = clampPage(limit, offset, s.limits.PublicPageSize)

	entries, total, err := s.entries.ListByStatus(ctx, domain.EntryStatusApproved, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list approved: %w", err)
	}

	return &QueuePage{Entries: entries, Total: total}, nil
}

// GetEntry returns a single entry regardless of status. Only moderators
// may call it; the public site never reads individual entries.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.GuestbookEntry, error) {
	principal, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.authz.Allowed(principal, authz.CapModerateGuestbook) {
		return nil, domain.ErrForbidden
	}

	if id == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}
