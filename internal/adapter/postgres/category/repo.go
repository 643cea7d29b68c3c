// Package category implements the category repository using PostgreSQL.
package category

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

const table = "categories"

var columns = []string{"id", "name", "slug", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type categoryRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

func (r categoryRow) toDomain() *domain.Category {
	return &domain.Category{ID: r.ID, Name: r.Name, Slug: r.Slug, CreatedAt: r.CreatedAt}
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return row.toDomain(), nil
}

// ListAll returns every category ordered by name.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select(columns...).From(table).OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}

	categories := make([]*domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = row.toDomain()
	}
	return categories, nil
}

// Create inserts a new category and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Insert(table).
		Columns("id", "name", "slug").
		Values(c.ID, c.Name, c.Slug).
		Suffix("RETURNING id, name, slug, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}
	return row.toDomain(), nil
}

// Update renames a category and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, slug string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Update(table).
		Set("name", name).
		Set("slug", slug).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, slug, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return row.toDomain(), nil
}

// Delete removes a category.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return postgres.MapError(err, "category", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "category", id)
	}
	return nil
}
