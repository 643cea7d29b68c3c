// Package guestbook implements visitor guestbook submission and the
// moderation workflow over entries.
package guestbook

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.GuestbookEntry) (*domain.GuestbookEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GuestbookEntry, error)
	ListByStatus(ctx context.Context, status domain.EntryStatus, limit, offset int) ([]*domain.GuestbookEntry, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EntryStatus, notes *string, moderatedBy uuid.UUID, moderatedAt time.Time) (*domain.GuestbookEntry, error)
	ApplyPatch(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.GuestbookEntry, error)
}

type authorizer interface {
	Allowed(p *domain.Principal, c authz.Capability) bool
}

const (
	MaxAuthorNameLen = 120
	MaxNotesLen      = 1000
)

// Limits bounds submissions and page sizes. Zero fields fall back to
// defaults.
type Limits struct {
	MaxMessageLen  int
	QueuePageSize  int
	PublicPageSize int
}

func (l Limits) withDefaults() Limits {
	if l.MaxMessageLen <= 0 {
		l.MaxMessageLen = 2000
	}
	if l.QueuePageSize <= 0 {
		l.QueuePageSize = 20
	}
	if l.PublicPageSize <= 0 {
		l.PublicPageSize = 20
	}
	return l
}

// Service provides guestbook submission and moderation operations.
type Service struct {
	entries entryRepo
	authz   authorizer
	limits  Limits
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new guestbook service.
func NewService(log *slog.Logger, entries entryRepo, auth authorizer, limits Limits) *Service {
	return &Service{
		entries: entries,
		authz:   auth,
		limits:  limits.withDefaults(),
		now:     time.Now,
		log:     log.With("service", "guestbook"),
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

func clampPage(limit, offset, fallback int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = fallback
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
