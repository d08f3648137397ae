package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, a *Account) error
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
	List(ctx context.Context, filter Filter) ([]*Account, int, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var columns = []string{
	"id", "email", "password_hash", "display_name",
	"is_active", "is_admin", "last_login_at", "created_at",
}

func scanAccount(row pgx.Row, a *Account, extra ...any) error {
	dest := []any{
		&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName,
		&a.IsActive, &a.IsAdmin, &a.LastLoginAt, &a.CreatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Account, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) getBy(ctx context.Context, cond squirrel.Eq) (*Account, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(columns...).
		From("public.staff_accounts").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get staff query failed: %w", err)
	}

	var a Account
	if err := scanAccount(r.pool.QueryRow(ctx, query, args...), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get staff account failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) Create(ctx context.Context, a *Account) error {
	const query = `
		INSERT INTO public.staff_accounts (email, password_hash, display_name, is_active, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		a.Email, a.PasswordHash, a.DisplayName, a.IsActive, a.IsAdmin,
	).Scan(&a.ID, &a.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create staff account failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE public.staff_accounts SET last_login_at = $1 WHERE id = $2`, t, id)
	if err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Account, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(columns, "count(*) OVER() AS total_count")...).
		From("public.staff_accounts")

	if filter.Email != "" {
		query = query.Where(squirrel.ILike{"email": "%" + filter.Email + "%"})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}

	query = query.OrderBy("created_at DESC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list staff query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list staff accounts failed: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	var total int

	for rows.Next() {
		var a Account
		if err := scanAccount(rows, &a, &total); err != nil {
			return nil, 0, fmt.Errorf("scan staff account failed: %w", err)
		}
		accounts = append(accounts, &a)
	}

	return accounts, total, nil
}

func (r *pgxRepository) SetActive(ctx context.Context, id string, active bool) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE public.staff_accounts SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("set staff active failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.staff_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff account failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
