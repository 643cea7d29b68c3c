// Package business implements the business listing repository using
// PostgreSQL.
package business

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/didivui/phongnha-backend/internal/adapter/postgres"
	"github.com/didivui/phongnha-backend/internal/domain"
)

const (
	table      = "businesses"
	likesTable = "business_likes"
)

var columns = []string{
	"b.id", "b.owner_id", "b.category_id", "b.name", "b.description",
	"b.address", "b.phone", "b.website", "b.latitude", "b.longitude",
	"b.verified", "b.created_at", "b.updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides business listing persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a business repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type businessRow struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	CategoryID  uuid.UUID `db:"category_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Address     *string   `db:"address"`
	Phone       *string   `db:"phone"`
	Website     *string   `db:"website"`
	Latitude    *float64  `db:"latitude"`
	Longitude   *float64  `db:"longitude"`
	Verified    bool      `db:"verified"`
	LikeCount   int       `db:"like_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r businessRow) toDomain() *domain.Business {
	return &domain.Business{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Phone:       r.Phone,
		Website:     r.Website,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Verified:    r.Verified,
		LikeCount:   r.LikeCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// selectWithLikes returns the base SELECT including the like count.
func selectWithLikes() sq.SelectBuilder {
	cols := make([]string, 0, len(columns)+1)
	cols = append(cols, columns...)
	cols = append(cols, "(SELECT COUNT(*) FROM "+likesTable+" l WHERE l.business_id = b.id) AS like_count")
	return psql.Select(cols...).From(table + " b")
}

// GetByID returns a business by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectWithLikes().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "business", id)
	}

	var row businessRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "business", id)
	}

	return row.toDomain(), nil
}

// List returns businesses, optionally filtered to verified listings or
// a single category, newest first.
func (r *Repo) List(ctx context.Context, verifiedOnly bool, categoryID *uuid.UUID, limit, offset int) ([]*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := selectWithLikes().
		OrderBy("b.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if verifiedOnly {
		query = query.Where(sq.Eq{"b.verified": true})
	}
	if categoryID != nil {
		query = query.Where(sq.Eq{"b.category_id": *categoryID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "business", uuid.Nil)
	}

	var rows []businessRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "business", uuid.Nil)
	}

	businesses := make([]*domain.Business, len(rows))
	for i, row := range rows {
		businesses[i] = row.toDomain()
	}
	return businesses, nil
}

// Create inserts a new business and returns the persisted row.
func (r *Repo) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Insert(table).
		Columns("id", "owner_id", "category_id", "name", "description",
			"address", "phone", "website", "latitude", "longitude", "verified").
		Values(b.ID, b.OwnerID, b.CategoryID, b.Name, b.Description,
			b.Address, b.Phone, b.Website, b.Latitude, b.Longitude, b.Verified).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "business", b.ID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "business", b.ID)
	}

	return r.GetByID(ctx, b.ID)
}

// Update overwrites the editable fields of a business.
func (r *Repo) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Update(table).
		Set("category_id", b.CategoryID).
		Set("name", b.Name).
		Set("description", b.Description).
		Set("address", b.Address).
		Set("phone", b.Phone).
		Set("website", b.Website).
		Set("latitude", b.Latitude).
		Set("longitude", b.Longitude).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "business", b.ID)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "business", b.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "business", b.ID)
	}

	return r.GetByID(ctx, b.ID)
}

// SetVerified flips the verification flag.
func (r *Repo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Update(table).
		Set("verified", verified).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "business", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "business", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "business", id)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a business and its likes.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return postgres.MapError(err, "business", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "business", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "business", id)
	}
	return nil
}

// Like records a user's like. Repeated likes are absorbed by the
// primary key, keeping the operation idempotent.
func (r *Repo) Like(ctx context.Context, businessID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Insert(likesTable).
		Columns("business_id", "user_id").
		Values(businessID, userID).
		Suffix("ON CONFLICT (business_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "business_like", businessID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "business_like", businessID)
	}
	return nil
}

// Unlike removes a user's like if present.
func (r *Repo) Unlike(ctx context.Context, businessID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Delete(likesTable).
		Where(sq.Eq{"business_id": businessID, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "business_like", businessID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "business_like", businessID)
	}
	return nil
}

// CountByCategory returns how many businesses reference a category.
func (r *Repo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "business", uuid.Nil)
	}

	var total int
	if err := pgxscan.Get(ctx, q, &total, sql, args...); err != nil {
		return 0, postgres.MapError(err, "business", uuid.Nil)
	}
	return total, nil
}
