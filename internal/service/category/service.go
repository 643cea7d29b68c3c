// Package category implements category management for the business
// directory.
package category

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListAll(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, name, slug string) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type businessCounter interface {
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
}

type authorizer interface {
	Allowed(p *domain.Principal, c authz.Capability) bool
}

// Service provides category operations.
type Service struct {
	categories categoryRepo
	businesses businessCounter
	authz      authorizer
	log        *slog.Logger
}

// NewService creates a new category service.
func NewService(log *slog.Logger, categories categoryRepo, businesses businessCounter, auth authorizer) *Service {
	return &Service{
		categories: categories,
		businesses: businesses,
		authz:      auth,
		log:        log.With("service", "category"),
	}
}

// slugify derives a URL slug from a category name: lowercase ASCII
// letters and digits, everything else collapsed to single hyphens.
// Vietnamese names are expected to be slugged by the caller when the
// automatic form is not good enough.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
