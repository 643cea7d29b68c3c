// Package guestbook implements the guestbook entry repository using
// PostgreSQL.
package guestbook

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/adapter/postgres"
	"github.com/didivui/phongnha-backend/internal/domain"
)

const table = "guestbook_entries"

var columns = []string{
	"id", "author_name", "message", "nationality", "location",
	"related_place_id", "rating", "spam_score", "status",
	"moderation_notes", "created_at", "moderated_at", "moderated_by",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides guestbook entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a guestbook repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// entryRow mirrors the guestbook_entries table.
type entryRow struct {
	ID              uuid.UUID  `db:"id"`
	AuthorName      string     `db:"author_name"`
	Message         string     `db:"message"`
	Nationality     *string    `db:"nationality"`
	Location        *string    `db:"location"`
	RelatedPlaceID  *uuid.UUID `db:"related_place_id"`
	Rating          *int       `db:"rating"`
	SpamScore       *float64   `db:"spam_score"`
	Status          string     `db:"status"`
	ModerationNotes *string    `db:"moderation_notes"`
	CreatedAt       time.Time  `db:"created_at"`
	ModeratedAt     *time.Time `db:"moderated_at"`
	ModeratedBy     *uuid.UUID `db:"moderated_by"`
}

func (r entryRow) toDomain() *domain.GuestbookEntry {
	return &domain.GuestbookEntry{
		ID:              r.ID,
		AuthorName:      r.AuthorName,
		Message:         r.Message,
		Nationality:     r.Nationality,
		Location:        r.Location,
		RelatedPlaceID:  r.RelatedPlaceID,
		Rating:          r.Rating,
		SpamScore:       r.SpamScore,
		Status:          domain.EntryStatus(r.Status),
		ModerationNotes: r.ModerationNotes,
		CreatedAt:       r.CreatedAt,
		ModeratedAt:     r.ModeratedAt,
		ModeratedBy:     r.ModeratedBy,
	}
}

// listRow adds the windowed count to a page row.
type listRow struct {
	entryRow
	Total int `db:"total"`
}

// Create inserts a new entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.GuestbookEntry) (*domain.GuestbookEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Insert(table).
		Columns("id", "author_name", "message", "nationality", "location",
			"related_place_id", "rating", "spam_score", "status", "created_at").
		Values(e.ID, e.AuthorName, e.Message, e.Nationality, e.Location,
			e.RelatedPlaceID, e.Rating, e.SpamScore, e.Status.String(), e.CreatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "guestbook_entry", e.ID)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "guestbook_entry", e.ID)
	}

	return row.toDomain(), nil
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GuestbookEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "guestbook_entry", id)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "guestbook_entry", id)
	}

	return row.toDomain(), nil
}

// ListByStatus returns entries in the given status, newest first, with
// the total count for that status. The count comes from a window over
// the same statement as the page, so the two cannot disagree under
// concurrent moderation.
func (r *Repo) ListByStatus(ctx context.Context, status domain.EntryStatus, limit, offset int) ([]*domain.GuestbookEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cols := append(append([]string{}, columns...), "COUNT(*) OVER () AS total")
	sql, args, err := psql.Select(cols...).
		From(table).
		Where(sq.Eq{"status": status.String()}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, postgres.MapError(err, "guestbook_entry", uuid.Nil)
	}

	var rows []listRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "guestbook_entry", uuid.Nil)
	}

	entries := make([]*domain.GuestbookEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.entryRow.toDomain()
	}

	total := 0
	switch {
	case len(rows) > 0:
		total = rows[0].Total
	case offset > 0:
		// A page past the end carries no rows and therefore no window
		// value; only then is a separate count needed.
		countSQL, countArgs, err := psql.Select("COUNT(*)").
			From(table).
			Where(sq.Eq{"status": status.String()}).
			ToSql()
		if err != nil {
			return nil, 0, postgres.MapError(err, "guestbook_entry", uuid.Nil)
		}
		if err := pgxscan.Get(ctx, q, &total, countSQL, countArgs...); err != nil {
			return nil, 0, postgres.MapError(err, "guestbook_entry", uuid.Nil)
		}
	}

	return entries, total, nil
}

// UpdateStatus overwrites the moderation fields of an entry and returns
// the updated row. The status write is unconditional; transition rules
// are enforced by the service before calling this.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EntryStatus, notes *string, moderatedBy uuid.UUID, moderatedAt time.Time) (*domain.GuestbookEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Update(table).
		Set("status", status.String()).
		Set("moderation_notes", notes).
		Set("moderated_at", moderatedAt).
		Set("moderated_by", moderatedBy).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "guestbook_entry", id)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "guestbook_entry", id)
	}

	return row.toDomain(), nil
}

// ApplyPatch overwrites only the fields present in the patch and returns
// the updated row. Status is never touched here.
func (r *Repo) ApplyPatch(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.GuestbookEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := psql.Update(table).Where(sq.Eq{"id": id})
	if patch.Message != nil {
		update = update.Set("message", *patch.Message)
	}
	if patch.Nationality != nil {
		update = update.Set("nationality", *patch.Nationality)
	}
	if patch.Location != nil {
		update = update.Set("location", *patch.Location)
	}
	if patch.RelatedPlaceID != nil {
		update = update.Set("related_place_id", *patch.RelatedPlaceID)
	}
	if patch.Rating != nil {
		update = update.Set("rating", *patch.Rating)
	}

	sql, args, err := update.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "guestbook_entry", id)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "guestbook_entry", id)
	}

	return row.toDomain(), nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}
