package guestbook

import (
	"strings"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
)

// SubmitInput holds the parameters of a public guestbook submission.
type SubmitInput struct {
	AuthorName     string
	Message        string
	Nationality    *string
	Location       *string
	RelatedPlaceID *uuid.UUID
	Rating         *int
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate(maxMessageLen int) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.AuthorName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "required"})
	}
	if len(name) > MaxAuthorNameLen {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "too long"})
	}

	message := strings.TrimSpace(i.Message)
	if message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if len(message) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}

	if i.Rating != nil && (*i.Rating < 1 || *i.Rating > 5) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ModerateInput holds the parameters of a moderation decision.
type ModerateInput struct {
	EntryID uuid.UUID
	Status  domain.EntryStatus
	Notes   *string
}

// Validate checks all fields and collects all errors.
func (i ModerateInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if !i.Status.IsValid() || i.Status == domain.EntryStatusPending {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be approved, rejected or spam"})
	}
	if i.Notes != nil && len(*i.Notes) > MaxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditInput holds the parameters of a content edit on an entry.
type EditInput struct {
	EntryID uuid.UUID
	Patch   domain.EntryPatch
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate(maxMessageLen int) error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Patch.Message != nil {
		message := strings.TrimSpace(*i.Patch.Message)
		if message == "" {
			errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
		}
		if len(message) > maxMessageLen {
			errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
		}
	}
	if i.Patch.Rating != nil && (*i.Patch.Rating < 1 || *i.Patch.Rating > 5) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListQueueInput holds the parameters of a moderation queue page.
type ListQueueInput struct {
	Status domain.EntryStatus
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListQueueInput) Validate() error {
	if !i.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status: "+i.Status.String())
	}
	return nil
}
