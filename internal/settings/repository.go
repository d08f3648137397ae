package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var columns = []string{
	"id", "company_name", "company_email", "company_phone", "company_address",
	"vat_percentage", "currency", "working_days", "time_slots",
	"default_booking_duration", "pickup_time", "pickup_blocked_hours",
	"updated_at",
}

func (r *pgxRepository) Get(ctx context.Context) (*Settings, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(columns...).
		From("public.settings").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get settings query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var s Settings
	if err := row.Scan(
		&s.ID, &s.CompanyName, &s.CompanyEmail, &s.CompanyPhone, &s.CompanyAddress,
		&s.VATPercentage, &s.Currency, &s.WorkingDays, &s.TimeSlots,
		&s.DefaultBookingDuration, &s.PickupTime, &s.PickupBlockedHours,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get settings failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Settings) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.settings").
		Set("company_name", s.CompanyName).
		Set("company_email", s.CompanyEmail).
		Set("company_phone", s.CompanyPhone).
		Set("company_address", s.CompanyAddress).
		Set("vat_percentage", s.VATPercentage).
		Set("currency", s.Currency).
		Set("working_days", s.WorkingDays).
		Set("time_slots", s.TimeSlots).
		Set("default_booking_duration", s.DefaultBookingDuration).
		Set("pickup_time", s.PickupTime).
		Set("pickup_blocked_hours", s.PickupBlockedHours).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update settings query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update settings failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
