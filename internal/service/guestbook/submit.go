package guestbook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
)

// Submit records a visitor message. Submission is public: no principal
// is required and the entry always starts out pending, invisible to the
// public listing until a moderator approves it.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.GuestbookEntry, error) {
	if err := input.Validate(s.limits.MaxMessageLen); err != nil {
		return nil, err
	}

	entry := &domain.GuestbookEntry{
		ID:             uuid.New(),
		AuthorName:     strings.TrimSpace(input.AuthorName),
		Message:        strings.TrimSpace(input.Message),
		Nationality:    trimOrNil(input.Nationality),
		Location:       trimOrNil(input.Location),
		RelatedPlaceID: input.RelatedPlaceID,
		Rating:         input.Rating,
		SpamScore:      spamScore(input.Message),
		Status:         domain.EntryStatusPending,
		CreatedAt:      s.now(),
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "guestbook entry submitted",
		slog.String("entry_id", created.ID.String()),
		slog.String("author", created.AuthorName),
	)

	return created, nil
}

// spamScore is an advisory signal for the review queue, on a 0..100
// scale. Link-heavy messages are the dominant spam pattern in practice,
// so each link raises the score; the moderator still makes every
// decision.
func spamScore(message string) *float64 {
	lower := strings.ToLower(message)
	links := strings.Count(lower, "http://") +
		strings.Count(lower, "https://") +
		strings.Count(lower, "www.")
	if links == 0 {
		return nil
	}

	score := 40 * float64(links)
	if score > 100 {
		score = 100
	}
	return &score
}
