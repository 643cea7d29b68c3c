// Package token implements the refresh token repository using PostgreSQL.
package token

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/adapter/postgres"
	"github.com/didivui/phongnha-backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a refresh token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r tokenRow) toDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	sql, args, err := psql.Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}
	return nil
}

// GetByHash returns the token with the given hash.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	var row tokenRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return row.toDomain(), nil
}

// RevokeByID marks a single token revoked.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser marks every live token of a user revoked.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes tokens whose expiry is in the past and returns
// how many were deleted. Invoked by cmd/cleanup-tokens.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Delete(table).
		Where("expires_at < now()").
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}
