// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/adapter/postgres"
	"github.com/didivui/phongnha-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "name", "password_hash", "role", "is_active",
	"created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email}, uuid.Nil)
}

func (r *Repo) getBy(ctx context.Context, cond sq.Eq, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select(columns...).From(table).Where(cond).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return row.toDomain(), nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Insert(table).
		Columns("id", "email", "name", "password_hash", "role", "is_active").
		Values(u.ID, u.Email, u.Name, u.PasswordHash, u.Role.String(), u.IsActive).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return row.toDomain(), nil
}

// UpdateProfile modifies the display name of the given user.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	return r.update(ctx, id, sq.Eq{"name": name})
}

// UpdateRole changes the role of the given user.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	return r.update(ctx, id, sq.Eq{"role": role.String()})
}

// SetActive activates or deactivates the given user.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	return r.update(ctx, id, sq.Eq{"is_active": active})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, sets sq.Eq) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := psql.Update(table).Set("updated_at", sq.Expr("now()"))
	for col, val := range sets {
		update = update.Set(col, val)
	}

	sql, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return row.toDomain(), nil
}

// List returns users ordered by creation time, newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "user", uuid.Nil)
	}

	var total int
	if err := pgxscan.Get(ctx, q, &total, sql, args...); err != nil {
		return 0, postgres.MapError(err, "user", uuid.Nil)
	}
	return total, nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}
