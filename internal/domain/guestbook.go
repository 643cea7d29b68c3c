package domain

import (
	"time"

	"github.com/google/uuid"
)

// GuestbookEntry is a visitor-submitted message subject to moderation.
// Entries are created pending and only leave that state through a
// moderator's action. SpamScore, when present, is an advisory signal
// computed upstream; it orders the review queue and never drives a
// transition on its own.
type GuestbookEntry struct {
	ID              uuid.UUID
	AuthorName      string
	Message         string
	Nationality     *string
	Location        *string
	RelatedPlaceID  *uuid.UUID
	Rating          *int
	SpamScore       *float64
	Status          EntryStatus
	ModerationNotes *string
	CreatedAt       time.Time
	ModeratedAt     *time.Time
	ModeratedBy     *uuid.UUID
}

// EntryPatch describes a partial content edit of a guestbook entry.
// Only non-nil fields are applied; Status is deliberately absent;
// content edits never move an entry through the moderation state machine.
type EntryPatch struct {
	Message        *string
	Nationality    *string
	Location       *string
	RelatedPlaceID *uuid.UUID
	Rating         *int
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Message == nil && p.Nationality == nil && p.Location == nil &&
		p.RelatedPlaceID == nil && p.Rating == nil
}
